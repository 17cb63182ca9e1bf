package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates or upgrades the schema. Authors are created before quotes
// so the quotes.author_id foreign key can reference them.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&authorModel{}, &quoteModel{}, &userModel{}); err != nil {
		return fmt.Errorf("store: migrate: %w", err)
	}

	return nil
}
