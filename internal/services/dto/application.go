package dto

import (
	"time"

	"jobportal_backend/internal/models"
)

// SubmitApplicationRequest - запрос отклика на вакансию
type SubmitApplicationRequest struct {
	JobID       string  `json:"job_id" binding:"required" validate:"required"`
	FullName    string  `json:"full_name" binding:"required" validate:"required"`
	Email       string  `json:"email" binding:"required,email" validate:"required,email"`
	ResumeURL   *string `json:"resume_url,omitempty" validate:"omitempty,url"`
	CoverLetter *string `json:"cover_letter,omitempty"`
}

// ApplicationResponse - представление отклика в списке "мои отклики"
type ApplicationResponse struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	JobTitle    string    `json:"job_title,omitempty"`
	CompanyName string    `json:"company_name,omitempty"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	ResumeURL   *string   `json:"resume_url,omitempty"`
	CoverLetter *string   `json:"cover_letter,omitempty"`
	AppliedAt   time.Time `json:"applied_at"`
}

// NewApplicationResponse строит ответ из модели
func NewApplicationResponse(app *models.Application) *ApplicationResponse {
	resp := &ApplicationResponse{
		ID:          app.ID,
		JobID:       app.JobID,
		FullName:    app.FullName,
		Email:       app.Email,
		ResumeURL:   app.ResumeURL,
		CoverLetter: app.CoverLetter,
		AppliedAt:   app.AppliedAt,
	}
	if app.Job != nil {
		resp.JobTitle = app.Job.Title
		if app.Job.Company != nil {
			resp.CompanyName = app.Job.Company.Name
		}
	}
	return resp
}
