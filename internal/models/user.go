package models

import "time"

type User struct {
	BaseModel
	Username     string   `gorm:"not null" json:"username"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`

	// Состояние сброса пароля: максимум один живой токен на аккаунт
	ResetToken    string     `gorm:"index" json:"-"`
	ResetTokenExp *time.Time `json:"-"`
}
