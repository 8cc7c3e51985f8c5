package usecase

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"

	"members-portal/internal/domain"
	"members-portal/internal/domain/repositories"
)

var (
	// ErrBadCredentials covers unknown username, ambiguous username and
	// wrong password alike. Callers must not surface which one it was.
	ErrBadCredentials = errors.New("bad credentials")

	// ErrEmailTaken means the signup pre-check found an existing record
	// with the same email.
	ErrEmailTaken = errors.New("email already registered")
)

// Events receives integration events for downstream services. Publish
// failures are the publisher's problem; the auth flow never fails on them.
type Events interface {
	UserCreated(user *domain.User)
	RoleChanged(username string, role domain.Role)
}

type AuthUsecase struct {
	repo   repositories.UserRepository
	events Events
	cost   int
}

func NewAuthUsecase(repo repositories.UserRepository, events Events, bcryptCost int) *AuthUsecase {
	if bcryptCost == 0 {
		bcryptCost = domain.DefaultBcryptCost
	}
	return &AuthUsecase{repo: repo, events: events, cost: bcryptCost}
}

// Login verifies the credentials and returns the user to copy into a
// session. The credential store is never written on this path. Exactly one
// record must match the username; zero or several fail the same way a
// wrong password does.
func (uc *AuthUsecase) Login(ctx context.Context, username, password string) (*domain.User, error) {
	if err := domain.ValidateUsername(username); err != nil {
		return nil, err
	}

	matches, err := uc.repo.FindAllByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(matches) != 1 {
		log.Printf("login: %d records match username %q", len(matches), username)
		return nil, ErrBadCredentials
	}

	user := &matches[0]
	if err := user.CheckPassword(password); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	return user, nil
}

// Signup validates, checks for an existing email and inserts a new user
// with the default role. The check and the insert are separate operations;
// two concurrent signups with the same email can both pass the check.
// Duplicate usernames are not rejected.
func (uc *AuthUsecase) Signup(ctx context.Context, username, email, password string) (*domain.User, error) {
	if err := domain.ValidateSignup(username, email, password); err != nil {
		return nil, err
	}

	existing, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	user := domain.NewUser(username, email)
	if err := user.SetPassword(password, uc.cost); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	if uc.events != nil {
		uc.events.UserCreated(user)
	}
	return user, nil
}

// Promote sets the first record matching username to admin. No existence
// check, no body validation; a miss is a silent no-op. Sessions already
// issued to that user keep their captured role until re-login.
func (uc *AuthUsecase) Promote(ctx context.Context, username string) error {
	return uc.setRole(ctx, username, domain.RoleAdmin)
}

// Demote sets the first record matching username back to user.
func (uc *AuthUsecase) Demote(ctx context.Context, username string) error {
	return uc.setRole(ctx, username, domain.RoleUser)
}

func (uc *AuthUsecase) setRole(ctx context.Context, username string, role domain.Role) error {
	if err := uc.repo.UpdateRole(ctx, username, role); err != nil {
		return err
	}
	if uc.events != nil {
		uc.events.RoleChanged(username, role)
	}
	return nil
}

// ListUsers returns every record for the admin panel.
func (uc *AuthUsecase) ListUsers(ctx context.Context) ([]domain.User, error) {
	return uc.repo.ListAll(ctx)
}
