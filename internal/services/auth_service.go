package services

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/email"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	RequestPasswordReset(db *gorm.DB, email string) error
	ResetPassword(db *gorm.DB, token, newPassword string) error
	ChangePassword(db *gorm.DB, userID, currentPassword, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
	tokenManager  *auth.TokenManager
	resetTokenTTL time.Duration
}

func NewAuthService(
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
	tokenManager *auth.TokenManager,
	resetTokenTTL time.Duration,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
		tokenManager:  tokenManager,
		resetTokenTTL: resetTokenTTL,
	}
}

// Register - регистрация нового пользователя
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	// Роль - закрытый перечень, проверяем на границе
	if !req.Role.IsValid() {
		return nil, apperrors.ErrInvalidUserRole
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         req.Role,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return buildUserResponse(user), nil
}

// Login - аутентификация пользователя
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Неизвестный email и неверный пароль неразличимы снаружи
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token: token,
		User:  buildUserResponse(user),
	}, nil
}

// RequestPasswordReset - запрос сброса пароля.
// Выпускает новый токен и перезаписывает предыдущий: живым остается
// только последний выданный. Токен уходит ТОЛЬКО в нотификатор,
// в ответ API он не попадает
func (s *AuthServiceImpl) RequestPasswordReset(db *gorm.DB, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(db, emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrEmailNotFound
		}
		return apperrors.InternalError(err)
	}

	resetToken, err := generateResetToken()
	if err != nil {
		return apperrors.InternalError(err)
	}
	expiresAt := time.Now().Add(s.resetTokenTTL)

	if err := s.userRepo.SetResetToken(db, user.ID, resetToken, expiresAt); err != nil {
		return apperrors.InternalError(err)
	}

	s.sendPasswordResetEmail(user.Email, resetToken)

	return nil
}

// ResetPassword - сброс пароля по токену.
// "Неверный токен" и "просроченный токен" не различаются в ответе,
// чтобы не давать оракул перебора
func (s *AuthServiceImpl) ResetPassword(db *gorm.DB, token, newPassword string) error {
	user, err := s.userRepo.FindByValidResetToken(db, token, time.Now())
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return apperrors.InternalError(err)
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	// Хеш и токен обновляются одним UPDATE: токен одноразовый
	if err := s.userRepo.ResetPassword(db, user.ID, hashedPassword); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

// ChangePassword - смена пароля (когда пользователь знает текущий)
func (s *AuthServiceImpl) ChangePassword(db *gorm.DB, userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	return s.userRepo.UpdatePassword(db, user.ID, hashedPassword)
}

// --- Helper functions ---

// sendPasswordResetEmail отправляет письмо со ссылкой для сброса пароля
func (s *AuthServiceImpl) sendPasswordResetEmail(emailAddr, token string) {
	if s.emailProvider == nil {
		return
	}

	go func() {
		if err := s.emailProvider.SendPasswordReset(emailAddr, token); err != nil {
			logger.Error("Failed to send password reset email", "error", err.Error())
		}
	}()
}

// buildUserResponse строит публичный ответ без хеша пароля
func buildUserResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}

// generateResetToken генерирует криптослучайный токен (256 бит)
func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
