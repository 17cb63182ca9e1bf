package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/jsamuelsen/quotes-service/internal/ports"
)

// HealthChecker pings the database for the readiness probe.
type HealthChecker struct {
	db *gorm.DB
}

var _ ports.HealthChecker = (*HealthChecker)(nil)

// NewHealthChecker creates a database health checker.
func NewHealthChecker(db *gorm.DB) *HealthChecker {
	return &HealthChecker{db: db}
}

func (h *HealthChecker) Name() string { return "database" }

func (h *HealthChecker) Check(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}
