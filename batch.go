package bezier

import (
	"fmt"
	"sync"
)

// BatchJob is one independent curve evaluation within a batch.
type BatchJob struct {
	Points   []Point
	Ratios   []float64 // optional; nil keeps unit weights
	Rational bool
}

// ComputeBatch evaluates independent curves with a shared sample count.
// Each job gets its own Curve, so results never depend on evaluation order.
// When parallel is true and there is more than one job, jobs run on separate
// goroutines. The first failing job's error is returned, prefixed with its index.
func ComputeBatch(jobs []BatchJob, samples int, parallel bool, opts ...Option) ([][]float64, error) {
	output := make([][]float64, len(jobs))

	if !parallel || len(jobs) <= 1 {
		for i := range jobs {
			result, err := computeJob(&jobs[i], samples, opts)
			if err != nil {
				return nil, fmt.Errorf("curve %d: %w", i, err)
			}
			output[i] = result
		}
		return output, nil
	}

	var wg sync.WaitGroup
	errs := make([]error, len(jobs))

	for i := range jobs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			result, err := computeJob(&jobs[idx], samples, opts)
			if err != nil {
				errs[idx] = fmt.Errorf("curve %d: %w", idx, err)
				return
			}
			output[idx] = result
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return output, nil
}

func computeJob(job *BatchJob, samples int, opts []Option) ([]float64, error) {
	c := NewCurve(opts...)
	if err := c.SetSamples(samples); err != nil {
		return nil, err
	}
	if err := c.SetPoints(job.Points); err != nil {
		return nil, err
	}
	if job.Ratios != nil {
		if err := c.SetRatios(job.Ratios); err != nil {
			return nil, err
		}
	}
	return c.Compute(job.Rational)
}
