package services

import (
	"time"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	Submit(db *gorm.DB, userID string, req *dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error)
	ListMyApplications(db *gorm.DB, userID string) ([]*dto.ApplicationResponse, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
	}
}

// Submit - отклик на вакансию.
// Последовательность проверка-вставка не атомарна при конкурентных
// запросах, поэтому проверка дубликата здесь - только быстрый отказ;
// гарантию дает уникальный индекс (job_id, user_id) в хранилище
func (s *ApplicationServiceImpl) Submit(db *gorm.DB, userID string, req *dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error) {
	// 1. Вакансия должна существовать и быть активной
	if _, err := s.jobRepo.FindActiveByID(db, req.JobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobUnavailable
		}
		return nil, apperrors.InternalError(err)
	}

	// 2. Быстрый отказ по уже существующему отклику
	exists, err := s.applicationRepo.ExistsByJobAndUser(db, req.JobID, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateApplication
	}

	// 3. Вставка; нарушение уникального индекса - тоже дубликат
	application := &models.Application{
		JobID:       req.JobID,
		UserID:      userID,
		FullName:    req.FullName,
		Email:       req.Email,
		ResumeURL:   req.ResumeURL,
		CoverLetter: req.CoverLetter,
		AppliedAt:   time.Now(),
	}

	if err := s.applicationRepo.Create(db, application); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrDuplicateApplication
		}
		return nil, apperrors.InternalError(err)
	}

	return dto.NewApplicationResponse(application), nil
}

// ListMyApplications - отклики текущего пользователя, свежие первыми
func (s *ApplicationServiceImpl) ListMyApplications(db *gorm.DB, userID string) ([]*dto.ApplicationResponse, error) {
	applications, err := s.applicationRepo.ListByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, dto.NewApplicationResponse(&applications[i]))
	}
	return responses, nil
}
