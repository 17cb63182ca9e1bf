package ports

import (
	"context"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// QuoteAPI is a remote service that serves one random quote per call.
// Implementations translate the remote format into an ImportEntry.
type QuoteAPI interface {
	// RandomQuote fetches a single quote.
	RandomQuote(ctx context.Context) (*domain.ImportEntry, error)
}
