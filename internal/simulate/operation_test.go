package simulate_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigitalBullGO/indicatorems/internal/simulate"
)

func TestOperationRunsToCompletion(t *testing.T) {
	var mu sync.Mutex
	var steps []int
	op := simulate.Start(context.Background(), "mara sync", 50*time.Millisecond, 5, func(p simulate.Progress) {
		mu.Lock()
		steps = append(steps, p.Step)
		mu.Unlock()
	})

	final := op.Wait()
	assert.Equal(t, simulate.StatusCompleted, final.Status)
	assert.Equal(t, 5, final.Step)
	assert.Equal(t, 5, final.TotalSteps)
	assert.InDelta(t, 100.0, final.Percent, 0.001)

	// 进度只增不减
	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, steps)
	for i := 1; i < len(steps); i++ {
		assert.GreaterOrEqual(t, steps[i], steps[i-1])
	}
}

func TestOperationCancel(t *testing.T) {
	op := simulate.Start(context.Background(), "slow sync", time.Hour, 10, nil)

	op.Cancel()
	final := op.Wait()
	assert.Equal(t, simulate.StatusCancelled, final.Status)
	assert.Less(t, final.Step, final.TotalSteps)

	// 取消是幂等的
	assert.NotPanics(t, op.Cancel)
	assert.Equal(t, simulate.StatusCancelled, op.Progress().Status)
}

func TestOperationParentContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	op := simulate.Start(ctx, "sync", time.Hour, 10, nil)

	cancel()
	select {
	case <-op.Done():
	case <-time.After(time.Second):
		t.Fatal("operation did not stop after parent context cancel")
	}
	assert.Equal(t, simulate.StatusCancelled, op.Progress().Status)
}

func TestOperationIDsAreUnique(t *testing.T) {
	a := simulate.Start(context.Background(), "a", 10*time.Millisecond, 1, nil)
	b := simulate.Start(context.Background(), "b", 10*time.Millisecond, 1, nil)
	assert.NotEqual(t, a.ID(), b.ID())
	a.Wait()
	b.Wait()
}

func TestRegistry(t *testing.T) {
	reg := simulate.NewRegistry()
	op := simulate.Start(context.Background(), "ekpo sync", 10*time.Millisecond, 2, nil)
	reg.Add(op)

	got, ok := reg.Get(op.ID())
	require.True(t, ok)
	assert.Same(t, op, got)

	_, ok = reg.Get("missing")
	assert.False(t, ok)
	op.Wait()
}
