package poll

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunnerFiresImmediatelyThenOnInterval(t *testing.T) {
	var runs atomic.Int64
	runner := NewRunner("test", 20*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runner.Start(ctx)

	assert.Eventually(t, func() bool {
		return runs.Load() >= 3
	}, time.Second, 5*time.Millisecond)
	assert.EqualValues(t, 0, runner.Skipped())
}

func TestRunnerSkipsOverlappingTicks(t *testing.T) {
	var runs atomic.Int64
	release := make(chan struct{})
	runner := NewRunner("slow", 10*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		<-release
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runner.Start(ctx)

	// The first run blocks, so every following tick must be dropped.
	assert.Eventually(t, func() bool {
		return runner.Skipped() >= 2
	}, time.Second, 5*time.Millisecond)
	assert.EqualValues(t, 1, runs.Load())

	close(release)
}

func TestRunnerStopsOnCancel(t *testing.T) {
	var runs atomic.Int64
	runner := NewRunner("cancel", 10*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	runner.Start(ctx)

	assert.Eventually(t, func() bool {
		return runs.Load() >= 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	time.Sleep(30 * time.Millisecond)
	settled := runs.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, runs.Load())
}
