package postgres

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the persisted shape of a user record. Username and email
// carry plain indexes only: uniqueness of email is checked by the signup
// flow before insert, and usernames are allowed to collide.
type UserModel struct {
	Id           uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Username     string `gorm:"index;not null"`
	Email        string `gorm:"index;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null;default:user"`
}

func (UserModel) TableName() string {
	return "users"
}
