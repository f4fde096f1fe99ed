package orchestrator

import (
	"context"
	"runtime"
	"sync"

	"github.com/ideamans/go-l10n"
)

// BatchItem is the outcome of one job in a batch.
type BatchItem struct {
	Index  int
	Config Config
	Result RunResult
	Err    error
}

// BatchResult lists every job outcome in input order.
type BatchResult struct {
	Items     []BatchItem
	Succeeded int
	Failed    int
}

// RunBatch runs jobs on a pool of workers. A failing job does not stop the
// others; cancellation of ctx does, and unstarted jobs report ctx.Err().
func (o *Orchestrator) RunBatch(ctx context.Context, jobs []Config, workers int) BatchResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	items := make([]BatchItem, len(jobs))
	for i, job := range jobs {
		items[i] = BatchItem{Index: i, Config: job}
	}
	if len(jobs) == 0 {
		return BatchResult{Items: items}
	}

	o.logger.Info(l10n.F("Running %d jobs with %d workers", len(jobs), workers))

	queue := make(chan int, len(jobs))
	for i := range jobs {
		queue <- i
	}
	close(queue)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		done int
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				item := &items[idx]
				if err := ctx.Err(); err != nil {
					item.Err = err
					continue
				}

				item.Result, item.Err = o.Run(ctx, item.Config)

				mu.Lock()
				done++
				n := done
				mu.Unlock()

				if item.Err != nil {
					o.logger.Error(l10n.F("Job %d failed: %s", idx+1, item.Err))
				} else {
					o.logger.Info(l10n.F("Job %d/%d done: %s", n, len(jobs), item.Config.OutputPath))
				}
			}
		}()
	}
	wg.Wait()

	result := BatchResult{Items: items}
	for _, item := range items {
		if item.Err != nil {
			result.Failed++
		} else {
			result.Succeeded++
		}
	}
	o.logger.Info(l10n.F("Batch completed: %d ok, %d failed", result.Succeeded, result.Failed))
	return result
}
