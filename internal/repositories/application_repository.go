package repositories

import (
	"errors"

	"jobportal_backend/internal/models"

	"gorm.io/gorm"
)

var ErrDuplicateApplication = errors.New("application already exists")

type ApplicationRepository interface {
	// Create полагается на уникальный индекс (job_id, user_id):
	// нарушение возвращается как ErrDuplicateApplication
	Create(db *gorm.DB, application *models.Application) error
	ExistsByJobAndUser(db *gorm.DB, jobID, userID string) (bool, error)
	ListByUser(db *gorm.DB, userID string) ([]models.Application, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, application *models.Application) error {
	if err := db.Create(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) ExistsByJobAndUser(db *gorm.DB, jobID, userID string) (bool, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ApplicationRepositoryImpl) ListByUser(db *gorm.DB, userID string) ([]models.Application, error) {
	var applications []models.Application
	err := db.Preload("Job").Preload("Job.Company").
		Where("user_id = ?", userID).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}
