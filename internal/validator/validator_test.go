package validator

import (
	"testing"

	"jobportal_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_RegisterRequest(t *testing.T) {
	t.Parallel()

	v := New()

	// Валидный запрос проходит
	err := v.Validate(&dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     "seeker",
	})
	assert.NoError(t, err)

	// Пустой запрос — все обязательные поля в карте ошибок
	err = v.Validate(&dto.RegisterRequest{})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, verr.Errors, "username")
	assert.Contains(t, verr.Errors, "email")
	assert.Contains(t, verr.Errors, "password")
	assert.Contains(t, verr.Errors, "role")
}

func TestValidate_UserRoleRule(t *testing.T) {
	t.Parallel()

	v := New()

	err := v.Validate(&dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     "admin",
	})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, verr.Errors["role"], "valid user role")
}

func TestValidate_JobTypeRule(t *testing.T) {
	t.Parallel()

	v := New()

	req := &dto.PostJobRequest{
		Title:       "Go Developer",
		Description: "Backend services",
		Location:    "Remote",
		JobType:     "freelance",
	}
	err := v.Validate(req)
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, verr.Errors, "job_type")

	req.JobType = "full-time"
	assert.NoError(t, v.Validate(req))
}

func TestValidate_JSONFieldNames(t *testing.T) {
	t.Parallel()

	v := New()

	// Имена полей в ошибках берутся из json-тегов, а не из Go-имен
	err := v.Validate(&dto.LoginRequest{Email: "not-an-email", Password: "x"})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, verr.Errors, "email")
	assert.NotContains(t, verr.Errors, "Email")
}
