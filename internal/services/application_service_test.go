package services

import (
	"sync"
	"testing"
	"time"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newApplicationService() ApplicationService {
	return NewApplicationService(
		repositories.NewApplicationRepository(),
		repositories.NewJobRepository(),
	)
}

func createJob(t *testing.T, db *gorm.DB, active bool) *models.Job {
	t.Helper()
	job := &models.Job{
		Title:       "Backend Developer",
		Description: "Go, Postgres",
		Location:    "Remote",
		JobType:     models.JobTypeFullTime,
		EmployerID:  "employer-1",
		IsActive:    active,
		PostedAt:    time.Now(),
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func submitRequest(jobID string) *dto.SubmitApplicationRequest {
	return &dto.SubmitApplicationRequest{
		JobID:    jobID,
		FullName: "Alice Seeker",
		Email:    "alice@test.com",
	}
}

func TestApplicationService_Submit(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newApplicationService()
	job := createJob(t, db, true)

	resp, err := svc.Submit(db, "user-1", submitRequest(job.ID))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, job.ID, resp.JobID)
}

func TestApplicationService_SubmitDuplicate(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newApplicationService()
	job := createJob(t, db, true)

	_, err := svc.Submit(db, "user-1", submitRequest(job.ID))
	require.NoError(t, err)

	// Повторный отклик того же пользователя на ту же вакансию - конфликт
	_, err = svc.Submit(db, "user-1", submitRequest(job.ID))
	assert.ErrorIs(t, err, apperrors.ErrDuplicateApplication)

	// Другой пользователь может откликнуться
	_, err = svc.Submit(db, "user-2", submitRequest(job.ID))
	assert.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Application{}).Where("job_id = ?", job.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

// Проверка-вставка не атомарна, поэтому последняя линия обороны -
// уникальный индекс (job_id, user_id): при конкурентных отправках
// в хранилище остается ровно одна строка
func TestApplicationService_SubmitConcurrent(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newApplicationService()
	job := createJob(t, db, true)

	const attempts = 8

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Submit(db, "racer", submitRequest(job.ID))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, apperrors.ErrDuplicateApplication)
		}
	}
	assert.Equal(t, 1, succeeded, "ровно одна отправка должна пройти")

	var count int64
	require.NoError(t, db.Model(&models.Application{}).
		Where("job_id = ? AND user_id = ?", job.ID, "racer").
		Count(&count).Error)
	assert.Equal(t, int64(1), count, "в хранилище ровно одна строка")
}

func TestApplicationService_SubmitInactiveJob(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newApplicationService()
	job := createJob(t, db, false)

	_, err := svc.Submit(db, "user-1", submitRequest(job.ID))
	assert.ErrorIs(t, err, apperrors.ErrJobUnavailable)

	// Несуществующая вакансия - тот же отказ
	_, err = svc.Submit(db, "user-1", submitRequest("no-such-job"))
	assert.ErrorIs(t, err, apperrors.ErrJobUnavailable)
}

func TestApplicationService_ListMyApplications(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newApplicationService()
	job1 := createJob(t, db, true)
	job2 := createJob(t, db, true)

	_, err := svc.Submit(db, "user-1", submitRequest(job1.ID))
	require.NoError(t, err)
	_, err = svc.Submit(db, "user-1", submitRequest(job2.ID))
	require.NoError(t, err)
	_, err = svc.Submit(db, "user-2", submitRequest(job1.ID))
	require.NoError(t, err)

	apps, err := svc.ListMyApplications(db, "user-1")
	require.NoError(t, err)
	assert.Len(t, apps, 2)
	for _, app := range apps {
		assert.Equal(t, "Backend Developer", app.JobTitle)
	}
}
