package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestPasswordGenerated(t *testing.T) {
	m := New()
	m.PasswordGenerated("Strong")
	m.PasswordGenerated("Strong")
	m.PasswordGenerated("")

	body := scrape(t, m)
	assert.Contains(t, body, `passvault_passwords_generated_total{strength="Strong"} 2`)
	assert.Contains(t, body, `passvault_passwords_generated_total{strength="none"} 1`)
}

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodPost, "/api/v1/generate", http.StatusOK, 20*time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `passvault_http_requests_total{method="POST",route="/api/v1/generate",status="200"} 1`)
	assert.Contains(t, body, `passvault_http_request_duration_seconds_count{method="POST",route="/api/v1/generate"} 1`)
}

func TestNewUsesPrivateRegistry(t *testing.T) {
	a, b := New(), New()
	a.PasswordGenerated("Weak")

	assert.NotContains(t, scrape(t, b), `strength="Weak"`)
}
