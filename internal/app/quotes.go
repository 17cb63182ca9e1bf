// Package app contains the use-case services the HTTP handlers and CLI
// commands call. Services depend on ports only.
package app

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/platform/telemetry"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

// randomAttempts bounds how often Random re-draws when the picked quote
// disappears between counting and fetching.
const randomAttempts = 3

// QuoteService implements listing, search, random pick and quote mutations.
type QuoteService struct {
	quotes  ports.QuoteRepository
	authors ports.AuthorRepository
	metrics *telemetry.Metrics
	logger  *slog.Logger

	// intN draws from [0, n); replaced in tests.
	intN func(n int64) int64
}

// QuoteServiceConfig contains the dependencies of a QuoteService.
type QuoteServiceConfig struct {
	Quotes  ports.QuoteRepository
	Authors ports.AuthorRepository
	Metrics *telemetry.Metrics
	Logger  *slog.Logger
}

// NewQuoteService creates a quote service. It panics when a repository is missing.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Quotes == nil {
		panic("app: quote repository is required")
	}
	if cfg.Authors == nil {
		panic("app: author repository is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		quotes:  cfg.Quotes,
		authors: cfg.Authors,
		metrics: cfg.Metrics,
		logger:  logger,
		intN:    rand.Int64N,
	}
}

// List returns every quote when query is empty, otherwise the quotes whose
// text contains query regardless of case.
func (s *QuoteService) List(ctx context.Context, query string) ([]domain.Quote, error) {
	if query == "" {
		return s.quotes.List(ctx)
	}

	return s.quotes.Search(ctx, query)
}

// Get returns one quote or a NotFoundError.
func (s *QuoteService) Get(ctx context.Context, id uint64) (*domain.Quote, error) {
	return s.quotes.Get(ctx, id)
}

// HasQuotes reports whether at least one quote exists.
func (s *QuoteService) HasQuotes(ctx context.Context) (bool, error) {
	n, err := s.quotes.Count(ctx)
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

// Random picks one quote uniformly from all stored quotes. ok is false when
// there are none.
func (s *QuoteService) Random(ctx context.Context) (quote *domain.Quote, ok bool, err error) {
	for range randomAttempts {
		n, err := s.quotes.Count(ctx)
		if err != nil {
			return nil, false, err
		}

		if n == 0 {
			s.metrics.RandomServed(false)
			return nil, false, nil
		}

		q, err := s.quotes.At(ctx, s.intN(n))
		switch {
		case err == nil:
			s.metrics.RandomServed(true)
			return q, true, nil
		case domain.IsNotFound(err):
			s.logger.DebugContext(ctx, "random quote vanished, drawing again")
			continue
		default:
			return nil, false, err
		}
	}

	// Deletes kept winning the race. Take the first row instead; only an
	// empty table leaves nothing to serve.
	q, err := s.quotes.At(ctx, 0)
	switch {
	case err == nil:
		s.metrics.RandomServed(true)
		return q, true, nil
	case domain.IsNotFound(err):
		s.metrics.RandomServed(false)
		return nil, false, nil
	default:
		return nil, false, err
	}
}

// Create validates fields and stores a new quote.
func (s *QuoteService) Create(ctx context.Context, fields domain.QuoteFields) (*domain.Quote, error) {
	fields = fields.Normalize()
	if err := s.validate(ctx, fields); err != nil {
		return nil, err
	}

	q := &domain.Quote{}
	q.Apply(fields)

	if err := s.quotes.Create(ctx, q); err != nil {
		return nil, err
	}

	s.metrics.Mutation("quote", "create")
	s.logger.InfoContext(ctx, "quote created", slog.Uint64("quote_id", q.ID))

	return q, nil
}

// Update validates fields and overwrites the quote with the given id.
// The stored quote is untouched when validation fails.
func (s *QuoteService) Update(ctx context.Context, id uint64, fields domain.QuoteFields) (*domain.Quote, error) {
	q, err := s.quotes.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fields = fields.Normalize()
	if err := s.validate(ctx, fields); err != nil {
		return nil, err
	}

	q.Apply(fields)

	if err := s.quotes.Update(ctx, q); err != nil {
		return nil, err
	}

	s.metrics.Mutation("quote", "update")
	s.logger.InfoContext(ctx, "quote updated", slog.Uint64("quote_id", q.ID))

	return q, nil
}

// SetActive changes only the active flag.
func (s *QuoteService) SetActive(ctx context.Context, id uint64, active bool) (*domain.Quote, error) {
	q, err := s.quotes.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if q.Active == active {
		return q, nil
	}

	q.Active = active
	if err := s.quotes.Update(ctx, q); err != nil {
		return nil, err
	}

	s.metrics.Mutation("quote", "update")
	s.logger.InfoContext(ctx, "quote active flag changed",
		slog.Uint64("quote_id", q.ID), slog.Bool("active", active))

	return q, nil
}

// Delete removes a quote. Deleting a missing id reports NotFound.
func (s *QuoteService) Delete(ctx context.Context, id uint64) error {
	if err := s.quotes.Delete(ctx, id); err != nil {
		return err
	}

	s.metrics.Mutation("quote", "delete")
	s.logger.InfoContext(ctx, "quote deleted", slog.Uint64("quote_id", id))

	return nil
}

// Page returns quotes after the cursor for the admin listing.
func (s *QuoteService) Page(ctx context.Context, afterID uint64, limit int) ([]domain.Quote, error) {
	return s.quotes.Page(ctx, afterID, limit)
}

// validate merges field rules with the author existence check so the caller
// sees every problem at once.
func (s *QuoteService) validate(ctx context.Context, fields domain.QuoteFields) error {
	problems := make(map[string]string)
	for k, v := range domain.FieldErrors(fields.Validate()) {
		problems[k] = v
	}

	if fields.AuthorID != nil && problems["author"] == "" {
		exists, err := s.authors.Exists(ctx, *fields.AuthorID)
		if err != nil {
			return err
		}
		if !exists {
			problems["author"] = domain.MsgInvalidAuthor
			s.logger.DebugContext(ctx, "quote references unknown author",
				slog.Uint64("author_id", *fields.AuthorID))
		}
	}

	return domain.NewFieldErrors(problems)
}
