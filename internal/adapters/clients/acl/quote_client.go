// Package acl translates remote APIs into domain types. Remote DTOs and
// client errors stop here.
package acl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jsamuelsen/quotes-service/internal/adapters/clients"
	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

const randomPath = "/random"

// quotableQuote is the quotable.io /random payload.
type quotableQuote struct {
	ID        string   `json:"_id"`
	Content   string   `json:"content"`
	Author    string   `json:"author"`
	Tags      []string `json:"tags"`
	DateAdded string   `json:"dateAdded"`
}

// QuoteClient reads random quotes from a quotable-compatible API.
type QuoteClient struct {
	client *clients.Client
	logger *slog.Logger
}

var _ ports.QuoteAPI = (*QuoteClient)(nil)

// NewQuoteClient wraps client. It panics when client is nil.
func NewQuoteClient(client *clients.Client, logger *slog.Logger) *QuoteClient {
	if client == nil {
		panic("acl: http client is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteClient{client: client, logger: logger}
}

// RandomQuote fetches one quote and maps it to an import entry.
func (c *QuoteClient) RandomQuote(ctx context.Context) (*domain.ImportEntry, error) {
	var ext quotableQuote
	if err := c.client.GetJSON(ctx, randomPath, &ext); err != nil {
		return nil, translateError(c.client.Service(), err)
	}

	entry, err := toImportEntry(&ext)
	if err != nil {
		return nil, domain.NewUnavailableError(c.client.Service(), err.Error())
	}

	logging.Trace(ctx, c.logger, "remote quote received",
		slog.String("remote_id", ext.ID), slog.String("author", entry.Author))

	return entry, nil
}

func toImportEntry(ext *quotableQuote) (*domain.ImportEntry, error) {
	text := strings.TrimSpace(ext.Content)
	if text == "" {
		return nil, fmt.Errorf("remote quote %q has no content", ext.ID)
	}

	entry := &domain.ImportEntry{
		Text:   text,
		Author: strings.TrimSpace(ext.Author),
	}

	if ext.DateAdded != "" {
		if t, err := time.Parse(time.DateOnly, ext.DateAdded); err == nil {
			entry.DateCreated = &t
		}
	}

	return entry, nil
}
