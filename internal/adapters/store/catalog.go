package store

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

// Catalog implements ports.Catalog.
type Catalog struct {
	db  *gorm.DB
	now func() time.Time
}

var _ ports.Catalog = (*Catalog)(nil)

// NewCatalog creates a catalog writer.
func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db, now: time.Now}
}

// ReplaceAll deletes every quote and author, then recreates them from
// entries. Authors are matched by exact name; an empty name means no author.
// Any failure rolls the whole import back.
func (c *Catalog) ReplaceAll(ctx context.Context, entries []domain.ImportEntry) (*domain.ImportSummary, error) {
	summary := &domain.ImportSummary{}

	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&quoteModel{})
		if res.Error != nil {
			return res.Error
		}
		summary.RemovedQuotes = res.RowsAffected

		res = tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&authorModel{})
		if res.Error != nil {
			return res.Error
		}
		summary.RemovedAuthors = res.RowsAffected

		authors := make(map[string]uint64)

		for _, e := range entries {
			row := &quoteModel{Text: strings.TrimSpace(e.Text), DateCreated: c.now()}
			if e.DateCreated != nil {
				row.DateCreated = *e.DateCreated
			}

			if name := strings.TrimSpace(e.Author); name != "" {
				id, ok := authors[name]
				if !ok {
					author := &authorModel{Name: name}
					if err := tx.Create(author).Error; err != nil {
						return err
					}
					id = author.ID
					authors[name] = id
				}
				row.AuthorID = &id
			}

			if err := tx.Omit("Author").Create(row).Error; err != nil {
				return err
			}
		}

		summary.Quotes = len(entries)
		summary.Authors = len(authors)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return summary, nil
}
