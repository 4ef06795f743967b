package apperrors

import (
	"net/http"
)

/*
Этот файл содержит фабрики и предопределенные переменные
для общих ошибок бизнес-логики и домена.
*/

// =========================================================================
// Фабричные ФУНКЦИИ
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Предопределенные ПЕРЕМЕННЫЕ (для частых, статичных ошибок)
// =========================================================================

// --- Auth ---

// ErrInvalidCredentials - неверный email или пароль.
// Специально не различаем "нет такого email" и "неверный пароль".
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrEmailAlreadyExists - email уже зарегистрирован
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already exists",
	http.StatusConflict,
)

// ErrInvalidUserRole - недопустимая роль пользователя
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"auth",
	"Invalid user role",
	http.StatusBadRequest,
)

// ErrWeakPassword - пароль не проходит политику сложности
var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Password is too weak",
	http.StatusBadRequest,
)

// ErrEmailNotFound - email не найден при запросе сброса пароля
var ErrEmailNotFound = New(
	CodeNotFound,
	"auth",
	"Email not found",
	http.StatusNotFound,
)

// ErrInvalidResetToken - reset-токен не найден или просрочен.
// Один ответ на оба случая, чтобы не давать оракул перебора токенов.
var ErrInvalidResetToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusBadRequest,
)

// --- Jobs & Applications ---

// ErrJobUnavailable - вакансия не существует или не активна
var ErrJobUnavailable = New(
	CodeNotFound,
	"jobs",
	"Job not found or inactive",
	http.StatusNotFound,
)

// ErrInvalidJobType - job_type вне допустимого перечня
var ErrInvalidJobType = New(
	CodeValidationFailed,
	"jobs",
	"Invalid job type",
	http.StatusBadRequest,
)

// ErrDuplicateApplication - повторный отклик на ту же вакансию
var ErrDuplicateApplication = New(
	CodeConflict,
	"applications",
	"You have already applied for this job",
	http.StatusConflict,
)
