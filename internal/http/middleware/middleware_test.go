package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/straye-as/finch-collector/internal/config"
	"github.com/straye-as/finch-collector/internal/domain"
	"github.com/straye-as/finch-collector/internal/http/middleware"
	"github.com/straye-as/finch-collector/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
})

func TestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	var seenID string
	h := middleware.Logging(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = middleware.RequestIDFromContext(r.Context())
		w.Header().Set(domain.OutcomeHeader, domain.OutcomeOK)
		w.WriteHeader(http.StatusSeeOther)
	}))

	t.Run("generates a request id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/finches", nil))

		assert.NotEmpty(t, seenID)
		assert.Equal(t, seenID, rec.Header().Get(middleware.RequestIDHeader))

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, int64(http.StatusSeeOther), fields["status_code"])
		assert.Equal(t, domain.OutcomeOK, fields["outcome"])
		assert.Equal(t, seenID, fields["request_id"])
	})

	t.Run("keeps an incoming request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-42")
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "req-42", seenID)
		logs.TakeAll()
	})
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	h := middleware.Recovery(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal_error")
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestRecovery_LogsRequestIDFromLogging(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	log := zap.New(core)
	h := middleware.Recovery(log)(middleware.Logging(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	t.Run("incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-42")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		entries := logs.FilterMessage("panic recovered").TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, "req-42", entries[0].ContextMap()["request_id"])
		logs.TakeAll()
	})

	t.Run("generated id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		generated := rec.Header().Get(middleware.RequestIDHeader)
		require.NotEmpty(t, generated)
		entries := logs.FilterMessage("panic recovered").TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, generated, entries[0].ContextMap()["request_id"])
	})
}

func TestSecurityHeaders(t *testing.T) {
	h := middleware.SecurityHeaders(&config.SecurityConfig{
		EnableHSTS:            true,
		HSTSMaxAge:            31536000,
		HSTSIncludeSubdomains: true,
		FrameOptions:          "DENY",
		ContentTypeNosniff:    true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	})(okHandler)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "max-age=31536000; includeSubDomains", rec.Header().Get("Strict-Transport-Security"))
	assert.Empty(t, rec.Header().Get("Content-Security-Policy"))
}

func TestCORS_ExposesOutcomeHeader(t *testing.T) {
	h := middleware.CORS(&config.CORSConfig{
		AllowedOrigins: []string{"https://finches.example.com"},
		AllowedMethods: []string{"GET", "POST"},
		ExposedHeaders: []string{domain.OutcomeHeader},
	}, "production", zap.NewNop())(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/finches", nil)
	req.Header.Set("Origin", "https://finches.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "https://finches.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), domain.OutcomeHeader)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/finches", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimiter(t *testing.T) {
	rl := middleware.NewRateLimiter(&config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 2,
		WhitelistIPs:      []string{"10.0.0.9"},
		WhitelistPaths:    []string{"/health", "/swagger/*"},
	}, zap.NewNop())
	h := rl.LimitByIP(okHandler)

	send := func(path, ip string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = ip + ":5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("/api/v1/finches", "10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("/api/v1/finches", "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("/api/v1/finches", "10.0.0.1"))

	assert.Equal(t, http.StatusOK, send("/api/v1/finches", "10.0.0.2"), "limits are per IP")
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, send("/health", "10.0.0.1"))
		assert.Equal(t, http.StatusOK, send("/swagger/index.html", "10.0.0.1"))
		assert.Equal(t, http.StatusOK, send("/api/v1/toys", "10.0.0.9"))
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := middleware.NewRateLimiter(&config.RateLimitConfig{Enabled: false, RequestsPerMinute: 1}, zap.NewNop())
	h := rl.LimitByIP(okHandler)

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestMetrics_UsesRoutePattern(t *testing.T) {
	m := metrics.New()

	r := chi.NewRouter()
	r.Use(middleware.Metrics(m))
	r.Get("/api/v1/finches/{id}", okHandler)

	for _, id := range []string{"a", "b"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/finches/"+id, nil))
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	assert.Contains(t, body, `finch_collector_http_requests_total{method="GET",route="/api/v1/finches/{id}",status="200"} 2`)
	assert.False(t, strings.Contains(body, `route="/api/v1/finches/a"`))
}
