package gate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestGate(timeout time.Duration) *Gate {
	g := New(Config{TimeoutSeconds: 1}, zap.NewNop())
	g.timeout = timeout
	return g
}

func TestAcquireRelease(t *testing.T) {
	g := newTestGate(time.Second)

	release, held := g.Acquire(context.Background())
	assert.True(t, held)
	release()

	// Released gate can be re-acquired immediately.
	release, held = g.Acquire(context.Background())
	assert.True(t, held)
	release()
}

func TestAcquireTimeoutFallback(t *testing.T) {
	g := newTestGate(50 * time.Millisecond)

	release, held := g.Acquire(context.Background())
	assert.True(t, held)

	// Gate is held: the second acquisition must time out and fall back to
	// proceeding unlocked instead of hanging.
	start := time.Now()
	release2, held2 := g.Acquire(context.Background())
	assert.False(t, held2)
	assert.Less(t, time.Since(start), time.Second)

	// The no-op release must be safe to call.
	release2()
	release()

	// After the real release the gate is available again.
	release3, held3 := g.Acquire(context.Background())
	assert.True(t, held3)
	release3()
}

func TestDefaultTimeout(t *testing.T) {
	g := New(Config{}, zap.NewNop())
	assert.Equal(t, 10*time.Second, g.timeout)
}
