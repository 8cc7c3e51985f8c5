package domain

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Role is the coarse authorization level stored per account and copied
// into each session at login.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

const (
	MaxUsernameLen = 20
	MaxPasswordLen = 20

	// DefaultBcryptCost matches the cost the service has always hashed with.
	DefaultBcryptCost = 12
)

// ErrValidation is the common ancestor of every input-shape error, so
// handlers can branch on the class without enumerating the causes.
var ErrValidation = errors.New("invalid input")

var (
	ErrUsernameRequired = fmt.Errorf("%w: username must not be empty", ErrValidation)
	ErrUsernameTooLong  = fmt.Errorf("%w: username must be at most 20 characters", ErrValidation)
	ErrUsernameFormat   = fmt.Errorf("%w: username must be alphanumeric", ErrValidation)
	ErrPasswordRequired = fmt.Errorf("%w: password must not be empty", ErrValidation)
	ErrPasswordTooLong  = fmt.Errorf("%w: password must be at most 20 characters", ErrValidation)
	ErrEmailInvalid     = fmt.Errorf("%w: email is not well-formed", ErrValidation)
)

type User struct {
	ID           uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Username     string
	Email        string
	PasswordHash string
	Role         Role
}

// NewUser builds an unsaved user with the default role. The password is
// carried separately and only ever stored hashed.
func NewUser(username, email string) *User {
	now := time.Now()
	return &User{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		Username:  username,
		Email:     email,
		Role:      RoleUser,
	}
}

// ValidateUsername enforces the login-time constraint: non-empty, at most
// 20 characters. Shape is not checked here, only at signup.
func ValidateUsername(username string) error {
	if username == "" {
		return ErrUsernameRequired
	}
	if len(username) > MaxUsernameLen {
		return ErrUsernameTooLong
	}
	return nil
}

// ValidateSignup enforces the signup constraints: alphanumeric username of
// at most 20 characters, password of at most 20 characters, well-formed
// email address.
func ValidateSignup(username, email, password string) error {
	if err := ValidateUsername(username); err != nil {
		return err
	}
	for _, r := range username {
		if !isAlphanumeric(r) {
			return ErrUsernameFormat
		}
	}
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) > MaxPasswordLen {
		return ErrPasswordTooLong
	}
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		return ErrEmailInvalid
	}
	return nil
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// SetPassword hashes the plaintext with the given bcrypt cost and stores
// only the hash on the user.
func (u *User) SetPassword(password string, cost int) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashed)
	return nil
}

// CheckPassword verifies the plaintext against the stored hash.
func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
