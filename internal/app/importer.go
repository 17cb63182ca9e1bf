package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/platform/telemetry"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

// ImportService replaces the catalog with the entries of a QuoteSource.
type ImportService struct {
	catalog  ports.Catalog
	executor *Executor
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// ImportServiceConfig contains the dependencies of an ImportService.
type ImportServiceConfig struct {
	Catalog ports.Catalog
	Metrics *telemetry.Metrics
	Logger  *slog.Logger
}

// NewImportService creates an import service. It panics without a catalog.
func NewImportService(cfg ImportServiceConfig) *ImportService {
	if cfg.Catalog == nil {
		panic("app: catalog is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ImportService{
		catalog:  cfg.Catalog,
		executor: NewExecutor(logger),
		metrics:  cfg.Metrics,
		logger:   logger,
	}
}

// Import fetches every entry from source, checks them all, and only then
// wipes and rewrites quotes and authors in one transaction.
func (s *ImportService) Import(ctx context.Context, source ports.QuoteSource) (*domain.ImportSummary, error) {
	var summary *domain.ImportSummary

	op := Operation[ports.QuoteSource, []domain.ImportEntry, []domain.ImportEntry, *domain.ImportSummary]{
		Name: "import",
		Validate: func(_ context.Context, src ports.QuoteSource) error {
			if src == nil {
				return errors.New("no import source")
			}
			return nil
		},
		Perform: func(ctx context.Context, src ports.QuoteSource) ([]domain.ImportEntry, error) {
			return src.Fetch(ctx)
		},
		Verify: func(ctx context.Context, src ports.QuoteSource, entries []domain.ImportEntry) ([]domain.ImportEntry, error) {
			entries = normalizeEntries(entries)
			if err := domain.ValidateImport(entries); err != nil {
				return nil, err
			}
			if len(entries) == 0 {
				s.logger.WarnContext(ctx, "import source is empty, catalog will be cleared",
					slog.String("source", src.Name()))
			}
			return entries, nil
		},
		Archive: func(ctx context.Context, _ ports.QuoteSource, entries []domain.ImportEntry) (err error) {
			summary, err = s.catalog.ReplaceAll(ctx, entries)
			return err
		},
		Respond: func(context.Context, ports.QuoteSource, []domain.ImportEntry) (*domain.ImportSummary, error) {
			return summary, nil
		},
	}

	name := "unknown"
	if source != nil {
		name = source.Name()
	}

	result, err := Execute(ctx, s.executor, op, source)
	if err != nil {
		s.metrics.Import(name, 0, false)
		return nil, err
	}

	s.metrics.Import(name, result.Quotes, true)
	s.logger.InfoContext(ctx, "catalog imported",
		slog.String("source", name),
		slog.Int("quotes", result.Quotes),
		slog.Int("authors", result.Authors),
		slog.Int64("removed_quotes", result.RemovedQuotes),
		slog.Int64("removed_authors", result.RemovedAuthors),
	)

	return result, nil
}

func normalizeEntries(entries []domain.ImportEntry) []domain.ImportEntry {
	out := make([]domain.ImportEntry, len(entries))
	for i, e := range entries {
		e.Text = strings.TrimSpace(e.Text)
		e.Author = strings.TrimSpace(e.Author)
		out[i] = e
	}

	return out
}

// RemoteSource draws Count random quotes from a QuoteAPI with at most
// Concurrency requests in flight. Failed draws are skipped; duplicates are
// dropped.
type RemoteSource struct {
	api         ports.QuoteAPI
	name        string
	count       int
	concurrency int
	logger      *slog.Logger
}

var _ ports.QuoteSource = (*RemoteSource)(nil)

// NewRemoteSource creates a remote source. It panics without an API client.
func NewRemoteSource(api ports.QuoteAPI, name string, count, concurrency int, logger *slog.Logger) *RemoteSource {
	if api == nil {
		panic("app: quote api client is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &RemoteSource{
		api:         api,
		name:        name,
		count:       count,
		concurrency: concurrency,
		logger:      logger,
	}
}

func (r *RemoteSource) Name() string { return r.name }

// Fetch fails only when every draw failed.
func (r *RemoteSource) Fetch(ctx context.Context) ([]domain.ImportEntry, error) {
	if r.count < 1 {
		return nil, domain.NewValidationError("count", "must be at least 1")
	}

	fns := make([]func(context.Context) (*domain.ImportEntry, error), r.count)
	for i := range fns {
		fns[i] = r.api.RandomQuote
	}

	results := ParallelPartialLimit(ctx, r.concurrency, fns...)

	var (
		entries = make([]domain.ImportEntry, 0, len(results))
		seen    = make(map[string]struct{}, len(results))
		errs    []error
	)

	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, res.Err)
			continue
		}
		if res.Value == nil {
			continue
		}
		if _, dup := seen[res.Value.Text]; dup {
			continue
		}

		seen[res.Value.Text] = struct{}{}
		entries = append(entries, *res.Value)
	}

	if len(errs) > 0 {
		r.logger.WarnContext(ctx, "some remote quotes could not be fetched",
			slog.String("source", r.name),
			slog.Int("failed", len(errs)),
			slog.Int("requested", r.count),
			slog.Any("error", errs[0]),
		)
	}

	if len(entries) == 0 && len(errs) > 0 {
		return nil, fmt.Errorf("fetching from %s: %w", r.name, errors.Join(errs...))
	}

	return entries, nil
}
