package services

import (
	"testing"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobService() JobService {
	return NewJobService(
		repositories.NewJobRepository(),
		repositories.NewCompanyRepository(),
	)
}

func TestJobService_PostJob(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newJobService()

	job, err := svc.PostJob(db, "employer-1", &dto.PostJobRequest{
		Title:       "Go Developer",
		Description: "Backend services",
		Location:    "Almaty",
		JobType:     "full-time",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.True(t, job.IsActive)
	assert.Equal(t, models.JobTypeFullTime, job.JobType)
}

func TestJobService_PostJobInvalidType(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newJobService()

	// Тип вне перечня отклоняется, а не приводится молча
	_, err := svc.PostJob(db, "employer-1", &dto.PostJobRequest{
		Title:       "Go Developer",
		Description: "Backend services",
		Location:    "Almaty",
		JobType:     "freelance",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidJobType)

	var count int64
	require.NoError(t, db.Model(&models.Job{}).Count(&count).Error)
	assert.Equal(t, int64(0), count, "строка не должна быть вставлена")
}

func TestJobService_PostJobUnknownCompany(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newJobService()

	companyID := "no-such-company"
	_, err := svc.PostJob(db, "employer-1", &dto.PostJobRequest{
		Title:       "Go Developer",
		Description: "Backend services",
		Location:    "Almaty",
		JobType:     "contract",
		CompanyID:   &companyID,
	})

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestJobService_SearchJobs(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newJobService()

	company := &models.Company{Name: "Acme Corp"}
	require.NoError(t, db.Create(company).Error)

	seed := []struct {
		title    string
		location string
		company  *string
	}{
		{"Go Developer", "Almaty", &company.ID},
		{"Python Developer", "Astana", nil},
		{"Go Developer (old)", "Almaty", nil},
	}
	for _, s := range seed {
		_, err := svc.PostJob(db, "employer-1", &dto.PostJobRequest{
			Title:       s.title,
			Description: "desc",
			Location:    s.location,
			JobType:     "full-time",
			CompanyID:   s.company,
		})
		require.NoError(t, err)
	}
	// Деактивируем третью вакансию напрямую
	require.NoError(t, db.Model(&models.Job{}).
		Where("title = ?", "Go Developer (old)").
		Update("is_active", false).Error)

	// Без фильтров: только активные
	all, err := svc.SearchJobs(db, &dto.JobSearchRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Поиск по подстроке названия
	goJobs, err := svc.SearchJobs(db, &dto.JobSearchRequest{Query: "Go"})
	require.NoError(t, err)
	require.Len(t, goJobs, 1)
	assert.Equal(t, "Go Developer", goJobs[0].Title)
	assert.Equal(t, "Acme Corp", goJobs[0].Company)

	// Поиск по имени компании
	acmeJobs, err := svc.SearchJobs(db, &dto.JobSearchRequest{Query: "Acme"})
	require.NoError(t, err)
	assert.Len(t, acmeJobs, 1)

	// Поиск по локации
	astanaJobs, err := svc.SearchJobs(db, &dto.JobSearchRequest{Location: "Astana"})
	require.NoError(t, err)
	require.Len(t, astanaJobs, 1)
	assert.Equal(t, "Python Developer", astanaJobs[0].Title)
}

func TestJobService_GetJob(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newJobService()

	posted, err := svc.PostJob(db, "employer-1", &dto.PostJobRequest{
		Title:       "Go Developer",
		Description: "Backend services",
		Location:    "Remote",
		JobType:     "part-time",
	})
	require.NoError(t, err)

	job, err := svc.GetJob(db, posted.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go Developer", job.Title)

	// Неактивная вакансия недоступна
	require.NoError(t, db.Model(&models.Job{}).
		Where("id = ?", posted.ID).
		Update("is_active", false).Error)

	_, err = svc.GetJob(db, posted.ID)
	assert.ErrorIs(t, err, apperrors.ErrJobUnavailable)
}
