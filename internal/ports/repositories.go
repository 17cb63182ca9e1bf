// Package ports defines the interfaces the application layer depends on.
// Adapters implement them; services never see gorm, HTTP clients, or files.
//
// Conventions:
//   - context.Context is always the first parameter
//   - only domain types cross the boundary
//   - a missing record is reported as a domain.NotFoundError
package ports

import (
	"context"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// QuoteRepository persists quotes. Reads populate Quote.Author when set.
// Every listing is ordered by ascending id.
type QuoteRepository interface {
	// List returns every quote.
	List(ctx context.Context) ([]domain.Quote, error)

	// Search returns quotes whose text contains query, ignoring case.
	Search(ctx context.Context, query string) ([]domain.Quote, error)

	// ListByAuthor returns the quotes attributed to an author.
	ListByAuthor(ctx context.Context, authorID uint64) ([]domain.Quote, error)

	// Page returns up to limit quotes with id greater than afterID.
	Page(ctx context.Context, afterID uint64, limit int) ([]domain.Quote, error)

	// Get returns the quote with the given id.
	Get(ctx context.Context, id uint64) (*domain.Quote, error)

	// Count returns the number of quotes.
	Count(ctx context.Context) (int64, error)

	// At returns the quote at a zero-based position in id order.
	At(ctx context.Context, offset int64) (*domain.Quote, error)

	// Create inserts q and sets its ID and DateCreated.
	Create(ctx context.Context, q *domain.Quote) error

	// Update writes the mutable fields of an existing quote.
	Update(ctx context.Context, q *domain.Quote) error

	// Delete removes a quote permanently.
	Delete(ctx context.Context, id uint64) error
}

// AuthorRepository persists authors. Deleting an author clears the author
// reference on its quotes instead of deleting them.
type AuthorRepository interface {
	List(ctx context.Context) ([]domain.Author, error)
	Page(ctx context.Context, afterID uint64, limit int) ([]domain.Author, error)
	Get(ctx context.Context, id uint64) (*domain.Author, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	Create(ctx context.Context, a *domain.Author) error
	Update(ctx context.Context, a *domain.Author) error
	Delete(ctx context.Context, id uint64) error
}

// UserRepository persists accounts.
type UserRepository interface {
	Get(ctx context.Context, id uint64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Page(ctx context.Context, afterID uint64, limit int) ([]domain.User, error)

	// Create inserts u. A taken username is reported as a domain.ConflictError.
	Create(ctx context.Context, u *domain.User) error

	// Update writes every mutable field of u.
	Update(ctx context.Context, u *domain.User) error
}

// Catalog replaces the whole quote and author collection in one transaction.
type Catalog interface {
	ReplaceAll(ctx context.Context, entries []domain.ImportEntry) (*domain.ImportSummary, error)
}

// QuoteSource yields quotes to import.
type QuoteSource interface {
	// Name identifies the source in logs.
	Name() string

	// Fetch returns the entries to import.
	Fetch(ctx context.Context) ([]domain.ImportEntry, error)
}
