package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/platform/telemetry"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

// AuthorDetail is an author together with the quotes attributed to it.
type AuthorDetail struct {
	Author *domain.Author
	Quotes []domain.Quote
}

// AuthorService implements author reads and mutations.
type AuthorService struct {
	authors ports.AuthorRepository
	quotes  ports.QuoteRepository
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// AuthorServiceConfig contains the dependencies of an AuthorService.
type AuthorServiceConfig struct {
	Authors ports.AuthorRepository
	Quotes  ports.QuoteRepository
	Metrics *telemetry.Metrics
	Logger  *slog.Logger
}

// NewAuthorService creates an author service. It panics when a repository is missing.
func NewAuthorService(cfg AuthorServiceConfig) *AuthorService {
	if cfg.Authors == nil {
		panic("app: author repository is required")
	}
	if cfg.Quotes == nil {
		panic("app: quote repository is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthorService{
		authors: cfg.Authors,
		quotes:  cfg.Quotes,
		metrics: cfg.Metrics,
		logger:  logger,
	}
}

// List returns every author.
func (s *AuthorService) List(ctx context.Context) ([]domain.Author, error) {
	return s.authors.List(ctx)
}

// Get returns one author without its quotes.
func (s *AuthorService) Get(ctx context.Context, id uint64) (*domain.Author, error) {
	return s.authors.Get(ctx, id)
}

// Detail loads the author and its quotes concurrently.
func (s *AuthorService) Detail(ctx context.Context, id uint64) (*AuthorDetail, error) {
	author, quotes, err := Parallel2(ctx,
		func(ctx context.Context) (*domain.Author, error) {
			return s.authors.Get(ctx, id)
		},
		func(ctx context.Context) ([]domain.Quote, error) {
			return s.quotes.ListByAuthor(ctx, id)
		},
	)
	if err != nil {
		return nil, err
	}

	return &AuthorDetail{Author: author, Quotes: quotes}, nil
}

// Create validates fields and stores a new author.
func (s *AuthorService) Create(ctx context.Context, fields domain.AuthorFields) (*domain.Author, error) {
	fields = fields.Normalize()
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	a := &domain.Author{}
	a.Apply(fields)

	if err := s.authors.Create(ctx, a); err != nil {
		return nil, err
	}

	s.metrics.Mutation("author", "create")
	s.logger.InfoContext(ctx, "author created", slog.Uint64("author_id", a.ID))

	return a, nil
}

// Update overwrites name and lastname. The stored author is untouched when
// validation fails.
func (s *AuthorService) Update(ctx context.Context, id uint64, fields domain.AuthorFields) (*domain.Author, error) {
	a, err := s.authors.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fields = fields.Normalize()
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	a.Apply(fields)

	if err := s.authors.Update(ctx, a); err != nil {
		return nil, err
	}

	s.metrics.Mutation("author", "update")
	s.logger.InfoContext(ctx, "author updated", slog.Uint64("author_id", a.ID))

	return a, nil
}

// Delete removes the author. Its quotes stay, with the author cleared.
func (s *AuthorService) Delete(ctx context.Context, id uint64) error {
	if err := s.authors.Delete(ctx, id); err != nil {
		return err
	}

	s.metrics.Mutation("author", "delete")
	s.logger.InfoContext(ctx, "author deleted", slog.Uint64("author_id", id))

	return nil
}

// Page returns a keyset page of authors for the admin listing.
func (s *AuthorService) Page(ctx context.Context, afterID uint64, limit int) ([]domain.Author, error) {
	return s.authors.Page(ctx, afterID, limit)
}
