package pixfx

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Job is one filter application in a batch.
type Job struct {
	Filter Filter
	Pix    []byte
	Width  int
	Height int
}

// Result is the outcome of one Job. Err is non-nil when the job's input was
// rejected, or carries the context error when the job never ran because the
// batch was canceled. Pix is nil whenever Err is set.
type Result struct {
	Pix []byte
	Err error
}

// ApplyBatch runs independent jobs concurrently, at most Workers() at a time,
// and returns one Result per job in job order. A rejected job does not stop
// the others. If ctx is canceled before every job has run, ApplyBatch
// returns ctx.Err(); jobs that did not run report it in Result.Err.
func (e *Engine) ApplyBatch(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))
	if len(jobs) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	started := 0
	for i, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		started++
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return err
			}
			pix, err := e.Apply(job.Filter, job.Pix, job.Width, job.Height)
			results[i] = Result{Pix: pix, Err: err}
			if err != nil {
				e.reject(job.Filter.String(), len(job.Pix), job.Width, job.Height, err)
			}
			return nil
		})
	}

	err := g.Wait()
	if err == nil && started < len(jobs) {
		err = ctx.Err()
	}
	if err != nil {
		for i := started; i < len(jobs); i++ {
			results[i].Err = err
		}
	}
	e.log().Debug("pixfx: batch done", "jobs", len(jobs), "err", err)
	return results, err
}
