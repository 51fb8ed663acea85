package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(t *testing.T, window time.Duration, max int) (*Limiter, *time.Time) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	now := time.Date(2023, time.June, 15, 10, 0, 0, 0, time.UTC)
	l := NewLimiter(ctx, window, max)
	l.now = func() time.Time { return now }
	return l, &now
}

func TestLimiter_Allow(t *testing.T) {
	l, now := newTestLimiter(t, time.Second, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("test-key"), "request %d should be allowed", i+1)
	}
	assert.False(t, l.Allow("test-key"))
	assert.True(t, l.Allow("other-key"))

	*now = now.Add(1100 * time.Millisecond)
	assert.True(t, l.Allow("test-key"))
}

func TestLimiter_Remaining(t *testing.T) {
	l, _ := newTestLimiter(t, time.Second, 5)

	assert.Equal(t, 5, l.Remaining("test-key"))
	l.Allow("test-key")
	l.Allow("test-key")
	assert.Equal(t, 3, l.Remaining("test-key"))
}

func TestMiddleware(t *testing.T) {
	l, _ := newTestLimiter(t, time.Minute, 2)
	h := Middleware(l)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/reports/dashboard", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1:5000").Code)
	assert.Equal(t, http.StatusOK, do("10.0.0.1:5001").Code)

	rec := do("10.0.0.1:5002")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, do("10.0.0.2:5000").Code)
}
