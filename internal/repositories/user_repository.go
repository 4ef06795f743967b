package repositories

import (
	"errors"
	"time"

	"jobportal_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	Create(db *gorm.DB, user *models.User) error
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)

	// Password reset: состояние живет на строке пользователя
	SetResetToken(db *gorm.DB, userID, token string, expiresAt time.Time) error
	FindByValidResetToken(db *gorm.DB, token string, now time.Time) (*models.User, error)
	ResetPassword(db *gorm.DB, userID, passwordHash string) error

	UpdatePassword(db *gorm.DB, userID, passwordHash string) error
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	if err := db.Create(user).Error; err != nil {
		// Уникальный индекс по email - вторая линия обороны
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// SetResetToken перезаписывает токен сброса: новый запрос
// автоматически инвалидирует предыдущий токен
func (r *UserRepositoryImpl) SetResetToken(db *gorm.DB, userID, token string, expiresAt time.Time) error {
	result := db.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"reset_token":     token,
			"reset_token_exp": expiresAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// FindByValidResetToken ищет пользователя по точному совпадению токена
// И с неистекшим сроком. Сравнение срока строгое: exp > now
func (r *UserRepositoryImpl) FindByValidResetToken(db *gorm.DB, token string, now time.Time) (*models.User, error) {
	var user models.User
	err := db.First(&user, "reset_token = ? AND reset_token_exp > ?", token, now).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ResetPassword заменяет хеш пароля и гасит reset-токен одним UPDATE,
// чтобы токен нельзя было употребить дважды
func (r *UserRepositoryImpl) ResetPassword(db *gorm.DB, userID, passwordHash string) error {
	result := db.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"password_hash":   passwordHash,
			"reset_token":     "",
			"reset_token_exp": nil,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdatePassword(db *gorm.DB, userID, passwordHash string) error {
	result := db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
