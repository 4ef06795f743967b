package services

import (
	"time"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService interface {
	PostJob(db *gorm.DB, employerID string, req *dto.PostJobRequest) (*dto.JobResponse, error)
	GetJob(db *gorm.DB, jobID string) (*dto.JobResponse, error)
	SearchJobs(db *gorm.DB, req *dto.JobSearchRequest) ([]*dto.JobResponse, error)
	ListCompanies(db *gorm.DB) ([]models.Company, error)
}

type JobServiceImpl struct {
	jobRepo     repositories.JobRepository
	companyRepo repositories.CompanyRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	companyRepo repositories.CompanyRepository,
) JobService {
	return &JobServiceImpl{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
	}
}

// PostJob - публикация вакансии работодателем.
// Роль уже проверена на Authorization Gate; здесь валидируем доменные поля
func (s *JobServiceImpl) PostJob(db *gorm.DB, employerID string, req *dto.PostJobRequest) (*dto.JobResponse, error) {
	jobType := models.JobType(req.JobType)
	// Тип вакансии никогда не приводится молча - только явный отказ
	if !jobType.IsValid() {
		return nil, apperrors.ErrInvalidJobType
	}

	if req.CompanyID != nil {
		if _, err := s.companyRepo.FindByID(db, *req.CompanyID); err != nil {
			if apperrors.Is(err, repositories.ErrCompanyNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
	}

	job := &models.Job{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		JobType:     jobType,
		Salary:      req.Salary,
		CompanyID:   req.CompanyID,
		EmployerID:  employerID,
		IsActive:    true,
		PostedAt:    time.Now(),
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewJobResponse(job), nil
}

// GetJob - вакансия по ID (только активная)
func (s *JobServiceImpl) GetJob(db *gorm.DB, jobID string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindActiveByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobUnavailable
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobResponse(job), nil
}

// SearchJobs - поиск активных вакансий по подстроке и локации
func (s *JobServiceImpl) SearchJobs(db *gorm.DB, req *dto.JobSearchRequest) ([]*dto.JobResponse, error) {
	jobs, err := s.jobRepo.Search(db, repositories.JobFilter{
		Query:    req.Query,
		Location: req.Location,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, dto.NewJobResponse(&jobs[i]))
	}
	return responses, nil
}

// ListCompanies - список компаний для формы публикации вакансии
func (s *JobServiceImpl) ListCompanies(db *gorm.DB) ([]models.Company, error) {
	companies, err := s.companyRepo.List(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return companies, nil
}
