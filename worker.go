package bezier

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrWorkerStopped is returned by Submit after Stop.
var ErrWorkerStopped = errors.New("worker stopped")

// defaultQueueSize is the request and result buffer depth of a Worker.
const defaultQueueSize = 16

// Request configures the spline and asks for a trajectory.
type Request struct {
	// Poses is the alternating position / orientation stream.
	Poses []r3.Vec

	// Samples is the shared sample count.
	Samples int
}

// Result is the outcome of one Request. Trajectory is owned by the receiver
// and never touched by the worker again, so it can be shared read-only.
type Result struct {
	ID         uuid.UUID
	Trajectory Trajectory
	Err        error
}

// Worker owns a Spline and evaluates requests on a single goroutine, so
// configuration changes and computations never overlap. Results are delivered
// in request order.
//
// Evaluation is not cancellable mid-request; a newer request simply
// supersedes older output when its result arrives.
type Worker struct {
	spline    *Spline
	queueSize int

	queue   chan job
	results chan Result
	quit    chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

type job struct {
	id  uuid.UUID
	req Request
}

// WorkerOption configures a Worker.
type WorkerOption func(*Worker)

// WithQueueSize sets the request and result buffer depth. Values below 1 are ignored.
func WithQueueSize(n int) WorkerOption {
	return func(w *Worker) {
		if n > 0 {
			w.queueSize = n
		}
	}
}

// NewWorker creates a worker around spline. The worker takes ownership of the
// spline; callers must not use it directly afterwards.
func NewWorker(spline *Spline, opts ...WorkerOption) *Worker {
	w := &Worker{spline: spline, queueSize: defaultQueueSize}
	for _, opt := range opts {
		opt(w)
	}

	w.queue = make(chan job, w.queueSize)
	w.results = make(chan Result, w.queueSize)
	w.quit = make(chan struct{})

	return w
}

// Start launches the consumer goroutine. It runs until ctx is done or Stop is
// called, then marks the worker stopped and closes the results channel.
// Calling Start again, or after Stop, has no effect.
func (w *Worker) Start(ctx context.Context) {
	w.startOnce.Do(func() {
		w.wg.Add(1)
		go w.run(ctx)
	})
}

// Submit enqueues req and returns the ID its Result will carry.
// It blocks while the queue is full.
func (w *Worker) Submit(ctx context.Context, req Request) (uuid.UUID, error) {
	select {
	case <-w.quit:
		return uuid.Nil, ErrWorkerStopped
	default:
	}

	j := job{id: uuid.New(), req: req}
	select {
	case w.queue <- j:
		return j.id, nil
	case <-w.quit:
		return uuid.Nil, ErrWorkerStopped
	case <-ctx.Done():
		return uuid.Nil, ctx.Err()
	}
}

// Results returns the channel results are delivered on.
func (w *Worker) Results() <-chan Result {
	return w.results
}

// Stop terminates the worker and waits for the consumer to exit, after which
// the results channel is closed. Requests still queued are dropped. Stop is
// idempotent and also closes the results of a worker that never started.
func (w *Worker) Stop() {
	w.markStopped()
	w.startOnce.Do(func() {
		close(w.results)
	})
	w.wg.Wait()
}

func (w *Worker) markStopped() {
	w.stopOnce.Do(func() {
		close(w.quit)
	})
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()
	defer close(w.results)
	// quit closes before results, so Submit never enqueues for an exited consumer.
	defer w.markStopped()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.quit:
			return
		case j := <-w.queue:
			res := w.process(j)
			select {
			case w.results <- res:
			case <-ctx.Done():
				return
			case <-w.quit:
				return
			}
		}
	}
}

func (w *Worker) process(j job) Result {
	res := Result{ID: j.id}

	if err := w.spline.SetPoses(j.req.Poses); err != nil {
		res.Err = err
		return res
	}
	if err := w.spline.SetSamples(j.req.Samples); err != nil {
		res.Err = err
		return res
	}

	res.Trajectory, res.Err = w.spline.Trajectory()
	return res
}
