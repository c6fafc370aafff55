package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	provider, err := NewProvider("tokenizer")
	require.NoError(t, err)
	require.NotNil(t, provider)

	t.Cleanup(func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	})

	assert.NotNil(t, provider.MeterProvider())
	assert.NotNil(t, provider.Handler())
}

func TestProvider_Handler(t *testing.T) {
	provider, err := NewProvider("tokenizer")
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	})

	// Record something so the exposition output is non-trivial.
	business, err := NewBusinessMetrics(provider.MeterProvider(), "tokenizer")
	require.NoError(t, err)
	business.RecordOperation(context.Background(), "tokenizer", "tokenize", "success")
	business.RecordDuration(context.Background(), "tokenizer", "tokenize", 5*time.Millisecond, "success")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	provider.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tokenizer_operations_total")
}

func TestNoOpBusinessMetrics(t *testing.T) {
	m := NewNoOpBusinessMetrics()

	assert.NotPanics(t, func() {
		m.RecordOperation(context.Background(), "tokenizer", "tokenize", "success")
		m.RecordDuration(context.Background(), "tokenizer", "tokenize", time.Millisecond, "success")
	})
}
