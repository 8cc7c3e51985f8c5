package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"members-portal/internal/domain"
	"members-portal/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

// Migrate creates or updates the users table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&UserModel{})
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	model := mapToModel(user)
	return r.db.WithContext(ctx).Create(&model).Error
}

func (r *UserRepository) FindAllByUsername(ctx context.Context, username string) ([]domain.User, error) {
	var models []UserModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).Find(&models).Error; err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(models))
	for i := range models {
		users = append(users, *mapToEntity(&models[i]))
	}
	return users, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var model UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapToEntity(&model), nil
}

// UpdateRole mutates the first matching record in place. A username that
// matches nothing is a silent no-op, mirroring an update-one with zero
// matched documents.
func (r *UserRepository) UpdateRole(ctx context.Context, username string, role domain.Role) error {
	var model UserModel
	err := r.db.WithContext(ctx).Where("username = ?", username).Order("created_at").First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return r.db.WithContext(ctx).Model(&UserModel{}).Where("id = ?", model.Id).Update("role", string(role)).Error
}

func (r *UserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	var models []UserModel
	if err := r.db.WithContext(ctx).Select("id", "created_at", "updated_at", "username", "email", "role").Order("created_at").Find(&models).Error; err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(models))
	for i := range models {
		users = append(users, *mapToEntity(&models[i]))
	}
	return users, nil
}

func mapToModel(user *domain.User) UserModel {
	return UserModel{
		Id:           user.ID,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
	}
}

func mapToEntity(model *UserModel) *domain.User {
	return &domain.User{
		ID:           model.Id,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
		Username:     model.Username,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Role:         domain.Role(model.Role),
	}
}
