package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/earnings-estimator-api/pkg/log"
)

func TestLoggingMiddleware(t *testing.T) {
	log.SetupTestLogger()

	var correlationID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusCreated)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/widgets", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, correlationID)
	assert.Equal(t, correlationID, rec.Header().Get("X-Correlation-ID"))
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "250 µs", formatDuration(250*time.Microsecond))
	assert.Equal(t, "12 ms", formatDuration(12*time.Millisecond))
	assert.Equal(t, "1.50 s", formatDuration(1500*time.Millisecond))
}
