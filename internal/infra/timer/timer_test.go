package timer

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestUpdater_RunsJobsUntilCancel(t *testing.T) {
	var ticks, failures atomic.Int32

	u := NewTimerUpdater(zerolog.Nop(),
		Job{Name: "tick", Interval: 5 * time.Millisecond, Run: func(ctx context.Context, now time.Time) error {
			ticks.Add(1)
			return nil
		}},
		Job{Name: "fail", Interval: 5 * time.Millisecond, Run: func(ctx context.Context, now time.Time) error {
			failures.Add(1)
			return errors.New("boom")
		}},
		Job{Name: "disabled", Interval: 0, Run: func(ctx context.Context, now time.Time) error {
			t.Error("disabled job must not run")
			return nil
		}},
	)

	ctx, cancel := context.WithCancel(context.Background())
	u.Start(ctx)

	assert.Eventually(t, func() bool {
		return ticks.Load() >= 2 && failures.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	u.Wait()

	stopped := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, ticks.Load())
}
