package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotes-service/internal/adapters/store"
	"github.com/jsamuelsen/quotes-service/internal/adapters/store/storetest"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                  { return s.name }
func (s stubChecker) Check(_ context.Context) error { return s.err }

func newHealthEngine(t *testing.T, buildInfo BuildInfo, checkers ...ports.HealthChecker) *gin.Engine {
	t.Helper()

	registry := ports.NewHealthRegistry()
	for _, c := range checkers {
		require.NoError(t, registry.Register(c))
	}

	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "health_test_total", Help: "test counter"})
	reg.MustRegister(counter)
	counter.Inc()

	engine := gin.New()
	NewHealthHandler(registry, buildInfo, promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).
		RegisterHealthRoutes(engine)

	return engine
}

func serve(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	return w
}

func TestNewBuildInfo(t *testing.T) {
	bi := NewBuildInfo("1.0.0", "abc123", "2026-01-15T10:00:00Z")

	assert.Equal(t, "1.0.0", bi.Version)
	assert.Equal(t, "abc123", bi.Commit)
	assert.Equal(t, "2026-01-15T10:00:00Z", bi.BuildTime)
	assert.Equal(t, runtime.Version(), bi.GoVersion)
}

func TestHealthHandler_Liveness(t *testing.T) {
	engine := newHealthEngine(t, BuildInfo{}, stubChecker{name: "database", err: errors.New("down")})

	w := serve(engine, "/-/live")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name       string
		checkers   []ports.HealthChecker
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no checks registered",
			wantStatus: http.StatusOK,
			wantBody:   `"status":"healthy"`,
		},
		{
			name: "all checks healthy",
			checkers: []ports.HealthChecker{
				stubChecker{name: "database"},
				stubChecker{name: "quote-api"},
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"healthy"`,
		},
		{
			name: "one check unhealthy",
			checkers: []ports.HealthChecker{
				stubChecker{name: "database"},
				stubChecker{name: "quote-api", err: errors.New("connection refused")},
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(newHealthEngine(t, BuildInfo{}, tt.checkers...), "/-/ready")

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestHealthHandler_Readiness_Database(t *testing.T) {
	engine := newHealthEngine(t, BuildInfo{}, store.NewHealthChecker(storetest.New(t)))

	w := serve(engine, "/-/ready")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database"`)
}

func TestHealthHandler_BuildInfo(t *testing.T) {
	engine := newHealthEngine(t, BuildInfo{
		Version:   "1.2.3",
		Commit:    "def456",
		BuildTime: "2026-02-01T12:00:00Z",
		GoVersion: "go1.25.7",
	})

	w := serve(engine, "/-/build")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[BuildInfo](t, w)
	assert.Equal(t, "1.2.3", resp.Version)
	assert.Equal(t, "def456", resp.Commit)
	assert.Equal(t, "2026-02-01T12:00:00Z", resp.BuildTime)
	assert.Equal(t, "go1.25.7", resp.GoVersion)
}

func TestHealthHandler_Metrics(t *testing.T) {
	w := serve(newHealthEngine(t, BuildInfo{}), "/-/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), "health_test_total 1")
}

func TestNewHealthHandler_DefaultMetrics(t *testing.T) {
	engine := gin.New()
	NewHealthHandler(ports.NewHealthRegistry(), BuildInfo{}, nil).RegisterHealthRoutes(engine)

	w := serve(engine, "/-/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
