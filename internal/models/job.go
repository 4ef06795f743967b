package models

import "time"

type Job struct {
	BaseModel
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	Location    string    `gorm:"not null" json:"location"`
	JobType     JobType   `gorm:"type:varchar(20);not null" json:"job_type"`
	Salary      *string   `json:"salary,omitempty"`
	CompanyID   *string   `gorm:"type:uuid;index" json:"company_id,omitempty"`
	EmployerID  string    `gorm:"type:uuid;not null;index" json:"employer_id"`
	IsActive    bool      `json:"is_active"`
	PostedAt    time.Time `gorm:"not null" json:"posted_at"`

	Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

type Company struct {
	BaseModel
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
}
