package ports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name  string
	err   error
	delay time.Duration
}

func (s *stubChecker) Name() string { return s.name }

func (s *stubChecker) Check(ctx context.Context) error {
	if s.delay == 0 {
		return s.err
	}

	select {
	case <-time.After(s.delay):
		return s.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestRegister(t *testing.T) {
	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(&stubChecker{name: "database"}))
	assert.Len(t, registry.checkers, 1)

	err := registry.Register(&stubChecker{name: "database"})
	require.ErrorIs(t, err, ErrDuplicateChecker)
	assert.Contains(t, err.Error(), "database")
	assert.Len(t, registry.checkers, 1)
}

func TestCheckAll(t *testing.T) {
	tests := []struct {
		name         string
		checkers     []HealthChecker
		wantStatus   HealthStatus
		wantMessages map[string]string
	}{
		{
			name:       "no checkers is healthy",
			wantStatus: HealthStatusHealthy,
		},
		{
			name: "all healthy",
			checkers: []HealthChecker{
				&stubChecker{name: "database"},
				&stubChecker{name: "quote-api"},
			},
			wantStatus: HealthStatusHealthy,
		},
		{
			name: "one failing marks the whole result unhealthy",
			checkers: []HealthChecker{
				&stubChecker{name: "database", err: errors.New("connection refused")},
				&stubChecker{name: "quote-api"},
			},
			wantStatus:   HealthStatusUnhealthy,
			wantMessages: map[string]string{"database": "connection refused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewHealthRegistry()
			for _, c := range tt.checkers {
				require.NoError(t, registry.Register(c))
			}

			result := registry.CheckAll(context.Background())

			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Len(t, result.Checks, len(tt.checkers))
			assert.False(t, result.Timestamp.IsZero())

			for name, msg := range tt.wantMessages {
				require.Contains(t, result.Checks, name)
				assert.Equal(t, HealthStatusUnhealthy, result.Checks[name].Status)
				assert.Equal(t, msg, result.Checks[name].Message)
			}
		})
	}
}

func TestCheckAll_SlowCheckerTimesOut(t *testing.T) {
	registry := NewHealthRegistryWithTimeout(20 * time.Millisecond)
	require.NoError(t, registry.Register(&stubChecker{name: "slow", delay: time.Second}))

	start := time.Now()
	result := registry.CheckAll(context.Background())

	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Contains(t, result.Checks["slow"].Message, "deadline exceeded")
}
