package shutdown

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/storefront/pkg/logger"
)

func TestWithSignals(t *testing.T) {
	t.Run("parent cancelled -> done", func(t *testing.T) {
		parent, cancelParent := context.WithCancel(context.Background())
		ctx, cancel := WithSignals(parent, logger.Discard())
		defer cancel()

		cancelParent()
		select {
		case <-ctx.Done():
		case <-time.After(time.Second):
			t.Fatal("context not cancelled")
		}
	})

	t.Run("SIGTERM -> done", func(t *testing.T) {
		ctx, cancel := WithSignals(context.Background(), logger.Discard())
		defer cancel()

		require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))
		select {
		case <-ctx.Done():
			assert.ErrorIs(t, ctx.Err(), context.Canceled)
		case <-time.After(2 * time.Second):
			t.Fatal("context not cancelled by signal")
		}
	})
}
