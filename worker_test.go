package bezier

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const workerTimeout = 5 * time.Second

func newTestWorker(t *testing.T, opts ...WorkerOption) *Worker {
	t.Helper()
	w := NewWorker(NewSpline(WithReporter(nil)), opts...)
	w.Start(t.Context())
	t.Cleanup(w.Stop)
	return w
}

func receive(t *testing.T, w *Worker) Result {
	t.Helper()
	select {
	case res, ok := <-w.Results():
		require.True(t, ok, "results channel closed")
		return res
	case <-time.After(workerTimeout):
		require.FailNow(t, "timed out waiting for result")
		return Result{}
	}
}

func TestWorker_ResultsInOrder(t *testing.T) {
	w := newTestWorker(t)

	counts := []int{3, 10, 0, 1, 42}
	ids := make([]uuid.UUID, len(counts))
	for i, m := range counts {
		id, err := w.Submit(t.Context(), Request{Poses: twoPoses, Samples: m})
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, id)
		ids[i] = id
	}

	for i, m := range counts {
		res := receive(t, w)
		assert.Equal(t, ids[i], res.ID, "result %d out of order", i)
		require.NoError(t, res.Err)
		assert.Len(t, res.Trajectory, m)
	}
}

func TestWorker_ReportsErrors(t *testing.T) {
	w := newTestWorker(t)

	_, err := w.Submit(t.Context(), Request{Poses: twoPoses[:1], Samples: 5})
	require.NoError(t, err)
	_, err = w.Submit(t.Context(), Request{Poses: twoPoses, Samples: -1})
	require.NoError(t, err)
	_, err = w.Submit(t.Context(), Request{Samples: 5})
	require.NoError(t, err)
	_, err = w.Submit(t.Context(), Request{Poses: twoPoses, Samples: 5})
	require.NoError(t, err)

	assert.ErrorIs(t, receive(t, w).Err, ErrOddPoseStream)
	assert.ErrorIs(t, receive(t, w).Err, ErrNegativeSamples)
	assert.ErrorIs(t, receive(t, w).Err, ErrEmptyCurve)

	// A failed request does not poison the next one.
	res := receive(t, w)
	require.NoError(t, res.Err)
	assert.Len(t, res.Trajectory, 5)
}

func TestWorker_SubmitAfterStop(t *testing.T) {
	w := newTestWorker(t)
	w.Stop()
	w.Stop()

	id, err := w.Submit(t.Context(), Request{Poses: twoPoses, Samples: 5})
	require.ErrorIs(t, err, ErrWorkerStopped)
	assert.Equal(t, uuid.Nil, id)

	_, ok := <-w.Results()
	assert.False(t, ok, "results channel should be closed after Stop")
}

func TestWorker_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	w := NewWorker(NewSpline(WithReporter(nil)))
	w.Start(ctx)
	cancel()

	select {
	case _, ok := <-w.Results():
		assert.False(t, ok)
	case <-time.After(workerTimeout):
		require.FailNow(t, "worker did not exit after cancel")
	}

	// Once the consumer has exited, nothing may be queued behind it.
	for range defaultQueueSize + 1 {
		id, err := w.Submit(context.Background(), Request{Poses: twoPoses, Samples: 5})
		require.ErrorIs(t, err, ErrWorkerStopped)
		assert.Equal(t, uuid.Nil, id)
	}
	w.Stop()
}

func TestWorker_StopWithoutStart(t *testing.T) {
	w := NewWorker(NewSpline(WithReporter(nil)))
	w.Stop()

	select {
	case _, ok := <-w.Results():
		assert.False(t, ok, "results channel should be closed")
	case <-time.After(workerTimeout):
		require.FailNow(t, "results channel left open after Stop")
	}

	_, err := w.Submit(t.Context(), Request{Poses: twoPoses, Samples: 5})
	require.ErrorIs(t, err, ErrWorkerStopped)

	// Start after Stop is a no-op rather than a consumer on a closed channel.
	w.Start(t.Context())
	w.Stop()
}

func TestWorker_SubmitBlockedByFullQueue(t *testing.T) {
	// Not started, so the single queue slot stays occupied.
	w := NewWorker(NewSpline(WithReporter(nil)), WithQueueSize(1))
	_, err := w.Submit(t.Context(), Request{Poses: []r3.Vec{{}, {}}})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()
	_, err = w.Submit(ctx, Request{Poses: []r3.Vec{{}, {}}})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	w.Stop()
}
