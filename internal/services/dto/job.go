package dto

import (
	"time"

	"jobportal_backend/internal/models"
)

// PostJobRequest - запрос публикации вакансии
type PostJobRequest struct {
	Title       string  `json:"title" binding:"required" validate:"required"`
	Description string  `json:"description" binding:"required" validate:"required"`
	Location    string  `json:"location" binding:"required" validate:"required"`
	JobType     string  `json:"job_type" binding:"required" validate:"required,is-job-type"`
	Salary      *string `json:"salary,omitempty"`
	CompanyID   *string `json:"company_id,omitempty"`
}

// JobSearchRequest - параметры поиска вакансий
type JobSearchRequest struct {
	Query    string `form:"q"`
	Location string `form:"location"`
}

// JobResponse - публичное представление вакансии
type JobResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Location    string         `json:"location"`
	JobType     models.JobType `json:"job_type"`
	Salary      *string        `json:"salary,omitempty"`
	Company     string         `json:"company,omitempty"`
	IsActive    bool           `json:"is_active"`
	PostedAt    time.Time      `json:"posted_at"`
}

// NewJobResponse строит ответ из модели
func NewJobResponse(job *models.Job) *JobResponse {
	resp := &JobResponse{
		ID:          job.ID,
		Title:       job.Title,
		Description: job.Description,
		Location:    job.Location,
		JobType:     job.JobType,
		Salary:      job.Salary,
		IsActive:    job.IsActive,
		PostedAt:    job.PostedAt,
	}
	if job.Company != nil {
		resp.Company = job.Company.Name
	}
	return resp
}
