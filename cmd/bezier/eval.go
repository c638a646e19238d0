package main

import (
	"context"
	"fmt"

	bezier "github.com/tphakala/go-bezier"
	"github.com/tphakala/go-bezier/internal/config"
	"gonum.org/v1/gonum/spatial/r3"
)

// result is the JSON document written for a job.
type result struct {
	Kind    config.Kind `json:"kind"`
	Samples int         `json:"samples"`
	Values  []float64   `json:"values"`
	Poses   []pose      `json:"poses,omitempty"`

	// stride is the number of values per sample.
	stride int
}

type pose struct {
	Position    [3]float64 `json:"position"`
	Orientation [3]float64 `json:"orientation"`
}

// evaluate runs job with n samples.
func evaluate(ctx context.Context, job *config.Job, n int, reporter bezier.Reporter) (*result, error) {
	res := &result{Kind: job.Kind, Samples: n}

	var err error
	switch job.Kind {
	case config.KindLinear:
		res.Values, err = bezier.Linear(reporter, toPoints(job.Points), n)
	case config.KindQuadratic:
		res.Values, err = bezier.Quadratic(reporter, toPoints(job.Points), n)
	case config.KindCubic:
		res.Values, err = bezier.Cubic(reporter, toPoints(job.Points), n)
	case config.KindNDegree:
		res.Values, err = evaluateCurve(job, n, reporter)
	case config.KindSpherical:
		res.Values, err = evaluateSpherical(job, n, reporter)
	case config.KindSpline:
		return evaluateSpline(ctx, job, n, reporter)
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", config.ErrInvalidConfig, job.Kind)
	}
	if err != nil {
		return nil, err
	}

	res.stride = eulerStride
	if job.Kind != config.KindSpherical && len(job.Points) > 0 {
		res.stride = len(job.Points[0])
	}

	return res, nil
}

func evaluateCurve(job *config.Job, n int, reporter bezier.Reporter) ([]float64, error) {
	c := bezier.NewCurve(bezier.WithReporter(reporter), bezier.WithSamples(n))
	if err := c.SetPoints(toPoints(job.Points)); err != nil {
		return nil, err
	}
	if len(job.Ratios) > 0 {
		if err := c.SetRatios(job.Ratios); err != nil {
			return nil, err
		}
	}
	return c.Compute(job.Rational)
}

func evaluateSpherical(job *config.Job, n int, reporter bezier.Reporter) ([]float64, error) {
	s := bezier.NewSphericalCurve(bezier.WithReporter(reporter), bezier.WithSamples(n))
	if err := s.SetAngles(toVecs(job.Angles)); err != nil {
		return nil, err
	}
	return s.Compute()
}

// evaluateSpline runs the pose stream through a Worker so an interrupt
// abandons the wait for a long evaluation.
func evaluateSpline(ctx context.Context, job *config.Job, n int, reporter bezier.Reporter) (*result, error) {
	mode, err := bezier.ParseOrientationMode(job.Orientation)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}

	spline := bezier.NewSpline(bezier.WithReporter(reporter), bezier.WithOrientationMode(mode))
	w := bezier.NewWorker(spline, bezier.WithQueueSize(1))
	w.Start(ctx)
	defer w.Stop()

	id, err := w.Submit(ctx, bezier.Request{Poses: toVecs(job.Poses), Samples: n})
	if err != nil {
		return nil, err
	}

	var out bezier.Result
	select {
	case r, ok := <-w.Results():
		if !ok {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return nil, bezier.ErrWorkerStopped
		}
		out = r
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if out.ID != id {
		return nil, fmt.Errorf("worker returned result %s for request %s", out.ID, id)
	}
	if out.Err != nil {
		return nil, out.Err
	}

	res := &result{
		Kind:    job.Kind,
		Samples: n,
		Values:  out.Trajectory.Flatten(),
		Poses:   make([]pose, len(out.Trajectory)),
		stride:  poseStride,
	}
	for i, p := range out.Trajectory {
		res.Poses[i] = pose{
			Position:    [3]float64{p.Position.X, p.Position.Y, p.Position.Z},
			Orientation: [3]float64{p.Orientation.X, p.Orientation.Y, p.Orientation.Z},
		}
	}
	return res, nil
}

func toPoints(values [][]float64) []bezier.Point {
	points := make([]bezier.Point, len(values))
	for i, v := range values {
		points[i] = bezier.Point(v)
	}
	return points
}

// toVecs converts triples; Validate guarantees three values each.
func toVecs(values [][]float64) []r3.Vec {
	vecs := make([]r3.Vec, len(values))
	for i, v := range values {
		vecs[i] = r3.Vec{X: v[0], Y: v[1], Z: v[2]}
	}
	return vecs
}
