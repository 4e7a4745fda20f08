package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/allisson/constguard/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeServer blocks in Start until Shutdown is called or startErr is returned.
type fakeServer struct {
	startErr    error
	shutdownErr error

	once     sync.Once
	stopped  chan struct{}
	shutdown bool
	mu       sync.Mutex
}

func newFakeServer(startErr, shutdownErr error) *fakeServer {
	return &fakeServer{startErr: startErr, shutdownErr: shutdownErr, stopped: make(chan struct{})}
}

func (f *fakeServer) Start(ctx context.Context) error {
	if f.startErr != nil {
		return f.startErr
	}
	<-f.stopped
	return nil
}

func (f *fakeServer) Shutdown(ctx context.Context) error {
	f.mu.Lock()
	f.shutdown = true
	f.mu.Unlock()
	f.once.Do(func() { close(f.stopped) })
	return f.shutdownErr
}

func (f *fakeServer) wasShutdown() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shutdown
}

func TestServe(t *testing.T) {
	cfg := &config.Config{ShutdownTimeout: time.Second}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("shutdown-on-cancel", func(t *testing.T) {
		api := newFakeServer(nil, nil)
		metrics := newFakeServer(nil, nil)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- serve(ctx, map[string]server{"api": api, "metrics": metrics}, cfg, logger)
		}()

		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("serve did not return after cancel")
		}
		assert.True(t, api.wasShutdown())
		assert.True(t, metrics.wasShutdown())
	})

	t.Run("start-error-stops-others", func(t *testing.T) {
		startErr := errors.New("address already in use")
		api := newFakeServer(startErr, nil)
		metrics := newFakeServer(nil, nil)

		err := serve(context.Background(), map[string]server{"api": api, "metrics": metrics}, cfg, logger)

		require.Error(t, err)
		assert.True(t, errors.Is(err, startErr))
		assert.Contains(t, err.Error(), "api server error")
		assert.True(t, metrics.wasShutdown())
	})

	t.Run("shutdown-error", func(t *testing.T) {
		shutdownErr := errors.New("shutdown timed out")
		api := newFakeServer(nil, shutdownErr)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := serve(ctx, map[string]server{"api": api}, cfg, logger)

		require.Error(t, err)
		assert.True(t, errors.Is(err, shutdownErr))
		assert.Contains(t, err.Error(), "api server shutdown")
	})
}
