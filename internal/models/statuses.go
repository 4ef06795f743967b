package models

type UserRole string
type JobType string

const (
	UserRoleSeeker   UserRole = "seeker"
	UserRoleEmployer UserRole = "employer"

	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

// IsValid проверяет, что роль входит в закрытый перечень
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleSeeker, UserRoleEmployer:
		return true
	}
	return false
}

// IsValid проверяет, что тип вакансии входит в закрытый перечень
func (t JobType) IsValid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}
