package calc

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Job is one entry of a batch. Strict applies on top of the batch options.
type Job struct {
	Calculation string
	Inputs      map[string]float64
	Strict      bool
}

// Batch evaluates jobs concurrently, at most one per CPU, and returns their
// results in job order. The first failure cancels the remaining jobs and is
// returned as a *JobError.
func Batch(ctx context.Context, reg *Registry, jobs []Job, opts Options) ([]*Result, error) {
	results := make([]*Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			c, err := reg.Get(job.Calculation)
			if err != nil {
				return &JobError{Index: i, Calculation: job.Calculation, Wrapped: err}
			}
			jobOpts := opts
			jobOpts.Strict = opts.Strict || job.Strict
			res, err := c.Eval(job.Inputs, jobOpts)
			if err != nil {
				return &JobError{Index: i, Calculation: job.Calculation, Wrapped: err}
			}

			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
