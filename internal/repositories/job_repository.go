package repositories

import (
	"errors"

	"jobportal_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter - фильтры поиска вакансий
type JobFilter struct {
	Query    string // подстрока в названии вакансии или имени компании
	Location string // подстрока в локации
}

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	FindActiveByID(db *gorm.DB, id string) (*models.Job, error)
	Search(db *gorm.DB, filter JobFilter) ([]models.Job, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.Preload("Company").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindActiveByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.Preload("Company").First(&job, "id = ? AND is_active = ?", id, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// Search возвращает активные вакансии, свежие первыми
func (r *JobRepositoryImpl) Search(db *gorm.DB, filter JobFilter) ([]models.Job, error) {
	query := db.Model(&models.Job{}).
		Select("jobs.*").
		Preload("Company").
		Where("jobs.is_active = ?", true)

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.
			Joins("LEFT JOIN companies ON companies.id = jobs.company_id").
			Where("jobs.title LIKE ? OR companies.name LIKE ?", pattern, pattern)
	}
	if filter.Location != "" {
		query = query.Where("jobs.location LIKE ?", "%"+filter.Location+"%")
	}

	var jobs []models.Job
	if err := query.Order("jobs.posted_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}
