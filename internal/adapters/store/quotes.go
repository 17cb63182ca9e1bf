package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

const entityQuote = "quote"

// QuoteRepository implements ports.QuoteRepository.
type QuoteRepository struct {
	db *gorm.DB
}

var _ ports.QuoteRepository = (*QuoteRepository)(nil)

// NewQuoteRepository creates a quote repository.
func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

func (r *QuoteRepository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&quoteModel{}).Preload("Author").Order("quotes.id ASC")
}

func (r *QuoteRepository) find(q *gorm.DB) ([]domain.Quote, error) {
	var rows []quoteModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	return mapSlice(rows, toQuote), nil
}

// List returns every quote with its author, oldest first.
func (r *QuoteRepository) List(ctx context.Context) ([]domain.Quote, error) {
	return r.find(r.query(ctx))
}

// Search returns quotes whose text contains query, ignoring case.
func (r *QuoteRepository) Search(ctx context.Context, query string) ([]domain.Quote, error) {
	q := r.query(ctx)

	return r.find(q.Where(ContainsExpr(r.db, "quotes.text"), ContainsPattern(r.db, query)))
}

// ListByAuthor returns the quotes attributed to authorID.
func (r *QuoteRepository) ListByAuthor(ctx context.Context, authorID uint64) ([]domain.Quote, error) {
	return r.find(r.query(ctx).Where("quotes.author_id = ?", authorID))
}

// Page returns up to limit quotes with IDs greater than afterID.
func (r *QuoteRepository) Page(ctx context.Context, afterID uint64, limit int) ([]domain.Quote, error) {
	return r.find(r.query(ctx).Where("quotes.id > ?", afterID).Limit(limit))
}

// Get loads one quote with its author.
func (r *QuoteRepository) Get(ctx context.Context, id uint64) (*domain.Quote, error) {
	var row quoteModel
	if err := r.query(ctx).Where("quotes.id = ?", id).First(&row).Error; err != nil {
		return nil, mapError(err, entityQuote, id)
	}

	return toQuote(&row), nil
}

// Count returns the number of stored quotes.
func (r *QuoteRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&quoteModel{}).Count(&n).Error

	return n, err
}

// At returns a NotFoundError when offset is past the end, which happens
// when rows are deleted between Count and At.
func (r *QuoteRepository) At(ctx context.Context, offset int64) (*domain.Quote, error) {
	var rows []quoteModel
	if err := r.query(ctx).Offset(int(offset)).Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, domain.NewNotFoundError(entityQuote, "offset")
	}

	return toQuote(&rows[0]), nil
}

// Create inserts q and fills in its ID and creation date.
func (r *QuoteRepository) Create(ctx context.Context, q *domain.Quote) error {
	row := fromQuote(q)
	row.ID = 0

	if err := r.db.WithContext(ctx).Omit("Author").Create(row).Error; err != nil {
		return mapError(err, entityQuote, 0)
	}

	q.ID = row.ID
	q.DateCreated = row.DateCreated

	return nil
}

// Update writes text, author and active. date_created is never touched.
func (r *QuoteRepository) Update(ctx context.Context, q *domain.Quote) error {
	res := r.db.WithContext(ctx).
		Model(&quoteModel{}).
		Where("id = ?", q.ID).
		Select("text", "author_id", "active").
		Updates(&quoteModel{Text: q.Text, AuthorID: q.AuthorID, Active: q.Active})
	if res.Error != nil {
		return mapError(res.Error, entityQuote, q.ID)
	}

	if res.RowsAffected == 0 {
		return notFound(entityQuote, q.ID)
	}

	return nil
}

// Delete removes the quote with the given id.
func (r *QuoteRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&quoteModel{}, id)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return notFound(entityQuote, id)
	}

	return nil
}
