// Package batch runs a compiled pattern over many subjects concurrently.
// It is a fixed-size worker pool: a *matcher.Regexp carries no mutable
// state once compiled,
// so workers can share one without coordination as long as each call
// gets its own capture slice.
package batch

import (
	"context"
	"fmt"
	"sync"

	"github.com/nmeillaya/mygrep/internal/matcher"
)

// Job is one subject to match, tagged with its position in the input so
// results can be reassembled in order even though workers finish out of
// order.
type Job struct {
	Index   int
	Subject []byte
}

// Result is the outcome of matching one Job's subject.
type Result struct {
	Index int
	Match *matcher.Result
	Err   error
}

// Engine runs a compiled pattern against a stream of subjects using a
// fixed pool of worker goroutines.
type Engine struct {
	re      *matcher.Regexp
	workers int
}

// New creates an Engine with the given worker count. workers <= 0 is
// treated as 1.
func New(re *matcher.Regexp, workers int) *Engine {
	if workers <= 0 {
		workers = 1
	}
	return &Engine{re: re, workers: workers}
}

// Run matches every subject against the engine's pattern and returns one
// Result per input, in the same order as subjects. It returns early with
// an error if ctx is canceled before all jobs finish.
func (e *Engine) Run(ctx context.Context, subjects [][]byte) ([]Result, error) {
	results := make([]Result, len(subjects))

	jobs := make(chan Job)
	var wg sync.WaitGroup

	for w := 0; w < e.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				res, ok := e.re.FindSubmatchIndex(job.Subject)
				if !ok {
					results[job.Index] = Result{Index: job.Index, Err: fmt.Errorf("subject %d: %w", job.Index, errNoMatch)}
					continue
				}
				results[job.Index] = Result{Index: job.Index, Match: res}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, s := range subjects {
			select {
			case jobs <- Job{Index: i, Subject: s}:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

var errNoMatch = fmt.Errorf("no match")
