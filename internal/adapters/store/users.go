package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

const entityUser = "user"

// UserRepository implements ports.UserRepository.
type UserRepository struct {
	db *gorm.DB
}

var _ ports.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates a user repository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Get loads one user by ID.
func (r *UserRepository) Get(ctx context.Context, id uint64) (*domain.User, error) {
	var row userModel
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, mapError(err, entityUser, id)
	}

	return toUser(&row), nil
}

// GetByUsername loads one user by exact username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var row userModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&row).Error; err != nil {
		if mapped := mapError(err, entityUser, 0); domain.IsNotFound(mapped) {
			return nil, domain.NewNotFoundError(entityUser, username)
		}
		return nil, err
	}

	return toUser(&row), nil
}

// Page returns up to limit users with IDs greater than afterID.
func (r *UserRepository) Page(ctx context.Context, afterID uint64, limit int) ([]domain.User, error) {
	var rows []userModel
	err := r.db.WithContext(ctx).Where("id > ?", afterID).Order("id ASC").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return mapSlice(rows, toUser), nil
}

// Create inserts u. A taken username is a ConflictError.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	row := fromUser(u)
	row.ID = 0

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if mapped := mapError(err, entityUser, 0); domain.IsConflict(mapped) {
			return domain.NewConflictError(entityUser, "a user with that username already exists")
		}
		return err
	}

	u.ID = row.ID
	u.DateJoined = row.DateJoined

	return nil
}

// Update writes every mutable account field.
func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	res := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", u.ID).
		Select("username", "email", "date_of_birth", "password_hash", "is_superuser", "is_active", "last_login").
		Updates(fromUser(u))
	if res.Error != nil {
		return mapError(res.Error, entityUser, u.ID)
	}

	if res.RowsAffected == 0 {
		return notFound(entityUser, u.ID)
	}

	return nil
}
