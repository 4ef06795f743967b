package dto

import "jobportal_backend/internal/models"

// RegisterRequest - запрос регистрации
type RegisterRequest struct {
	Username string          `json:"username" binding:"required" validate:"required,min=2"`
	Email    string          `json:"email" binding:"required,email" validate:"required,email"`
	Password string          `json:"password" binding:"required" validate:"required,min=6"`
	Role     models.UserRole `json:"role" binding:"required" validate:"required,is-user-role"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

// LoginResponse - ответ на успешный вход
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// UserResponse - публичное представление пользователя (без хеша пароля)
type UserResponse struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Role     models.UserRole `json:"role"`
}

// PasswordResetRequest - запрос сброса пароля
type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email" validate:"required,email"`
}

// PasswordResetConfirm - подтверждение сброса по токену
type PasswordResetConfirm struct {
	Token       string `json:"token" binding:"required" validate:"required"`
	NewPassword string `json:"password" binding:"required" validate:"required,min=6"`
}

// ChangePasswordRequest - смена пароля при известном текущем
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required" validate:"required"`
	NewPassword     string `json:"new_password" binding:"required" validate:"required,min=6"`
}
