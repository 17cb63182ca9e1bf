package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

const entityAuthor = "author"

// AuthorRepository implements ports.AuthorRepository.
type AuthorRepository struct {
	db *gorm.DB
}

var _ ports.AuthorRepository = (*AuthorRepository)(nil)

// NewAuthorRepository creates an author repository.
func NewAuthorRepository(db *gorm.DB) *AuthorRepository {
	return &AuthorRepository{db: db}
}

// List returns every author ordered by ID.
func (r *AuthorRepository) List(ctx context.Context) ([]domain.Author, error) {
	var rows []authorModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	return mapSlice(rows, toAuthor), nil
}

// Page returns up to limit authors with IDs greater than afterID.
func (r *AuthorRepository) Page(ctx context.Context, afterID uint64, limit int) ([]domain.Author, error) {
	var rows []authorModel
	err := r.db.WithContext(ctx).Where("id > ?", afterID).Order("id ASC").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return mapSlice(rows, toAuthor), nil
}

// Get loads one author.
func (r *AuthorRepository) Get(ctx context.Context, id uint64) (*domain.Author, error) {
	var row authorModel
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, mapError(err, entityAuthor, id)
	}

	return toAuthor(&row), nil
}

// Exists reports whether an author with id is stored.
func (r *AuthorRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&authorModel{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}

	return n > 0, nil
}

// Create inserts a and fills in its ID and creation date.
func (r *AuthorRepository) Create(ctx context.Context, a *domain.Author) error {
	row := fromAuthor(a)
	row.ID = 0

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return mapError(err, entityAuthor, 0)
	}

	a.ID = row.ID
	a.DateCreated = row.DateCreated

	return nil
}

// Update writes the author's name fields.
func (r *AuthorRepository) Update(ctx context.Context, a *domain.Author) error {
	res := r.db.WithContext(ctx).
		Model(&authorModel{}).
		Where("id = ?", a.ID).
		Select("name", "lastname").
		Updates(&authorModel{Name: a.Name, Lastname: a.Lastname})
	if res.Error != nil {
		return mapError(res.Error, entityAuthor, a.ID)
	}

	if res.RowsAffected == 0 {
		return notFound(entityAuthor, a.ID)
	}

	return nil
}

// Delete removes the author and clears author_id on its quotes in one
// transaction, so the quotes survive whether or not the driver enforces
// the ON DELETE SET NULL constraint.
func (r *AuthorRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&quoteModel{}).Where("author_id = ?", id).Update("author_id", nil).Error
		if err != nil {
			return err
		}

		res := tx.Delete(&authorModel{}, id)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			return notFound(entityAuthor, id)
		}

		return nil
	})
}
