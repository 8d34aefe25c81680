package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"travel-backoffice-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_AddRejectsBadSpec(t *testing.T) {
	s := New(logger.NewNopLogger(), time.Second)

	err := s.Add("bad", "every hour", func(context.Context) (int64, error) { return 0, nil })
	assert.Error(t, err)

	// five-field specs are rejected because seconds are required
	err = s.Add("five", "0 * * * *", func(context.Context) (int64, error) { return 0, nil })
	assert.Error(t, err)

	assert.NoError(t, s.Add("hourly", "0 0 * * * *", func(context.Context) (int64, error) { return 0, nil }))
}

func TestScheduler_RunAppliesTimeout(t *testing.T) {
	s := New(logger.NewNopLogger(), 50*time.Millisecond)

	var sawDeadline atomic.Bool
	s.Run("deadline", func(ctx context.Context) (int64, error) {
		_, ok := ctx.Deadline()
		sawDeadline.Store(ok)
		return 3, nil
	})
	assert.True(t, sawDeadline.Load())

	// failures are logged, not propagated
	s.Run("failing", func(context.Context) (int64, error) { return 0, errors.New("boom") })
}

func TestScheduler_StartFiresJobs(t *testing.T) {
	s := New(logger.NewNopLogger(), time.Second)

	var runs atomic.Int32
	require.NoError(t, s.Add("tick", "* * * * * *", func(context.Context) (int64, error) {
		runs.Add(1)
		return 1, nil
	}))
	s.Start()
	defer s.Stop(context.Background())

	assert.Eventually(t, func() bool { return runs.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
}
