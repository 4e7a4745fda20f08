package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterArenaGauge(t *testing.T) {
	provider, err := NewProvider("arena_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	var size atomic.Int64
	size.Store(3)

	err = RegisterArenaGauge(provider.MeterProvider(), "arena_test", func() int {
		return int(size.Load())
	})
	require.NoError(t, err)

	scrape := func() string {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		provider.Handler().ServeHTTP(w, req)
		return w.Body.String()
	}

	assert.Regexp(t, `arena_test_arena_containers(\{[^}]*\})? 3`, scrape())

	size.Store(5)
	assert.Regexp(t, `arena_test_arena_containers(\{[^}]*\})? 5`, scrape())
}
