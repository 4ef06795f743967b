package models

import "time"

// Application - отклик на вакансию.
// Уникальный индекс (job_id, user_id) - гарантия "одна заявка на вакансию"
// на уровне хранилища; проверка в сервисе только ускоряет отказ.
type Application struct {
	BaseModel
	JobID       string    `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_user" json:"job_id"`
	UserID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_user" json:"user_id"`
	FullName    string    `gorm:"not null" json:"full_name"`
	Email       string    `gorm:"not null" json:"email"`
	ResumeURL   *string   `json:"resume_url,omitempty"`
	CoverLetter *string   `json:"cover_letter,omitempty"`
	AppliedAt   time.Time `gorm:"not null" json:"applied_at"`

	Job *Job `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
