package gonepali

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type batchJob struct {
	index int
	text  string
}

type batchResult struct {
	index int
	text  string
}

func (e *Engine) channelTransliterate(ctx context.Context, jobs <-chan batchJob, channel chan<- batchResult, wg *sync.WaitGroup) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			// Drain so the dispatcher never blocks
			continue
		default:
			channel <- batchResult{job.index, e.Transliterate(job.text)}
		}
	}
}

// TransliterateBatch transliterates every text on the engine's worker
// pool. Results are in input order. When ctx is done texts not yet
// started are left empty and ctx.Err() is returned.
func (e *Engine) TransliterateBatch(ctx context.Context, texts []string) ([]string, error) {
	results := make([]string, len(texts))
	if len(texts) == 0 {
		return results, nil
	}

	start := time.Now()

	workers := e.workers
	if workers > len(texts) {
		workers = len(texts)
	}

	jobs := make(chan batchJob)
	channel := make(chan batchResult, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go e.channelTransliterate(ctx, jobs, channel, &wg)
	}

	go func() {
		defer close(jobs)
		for i, text := range texts {
			select {
			case <-ctx.Done():
				return
			case jobs <- batchJob{i, text}:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(channel)
	}()

	done := 0
	for result := range channel {
		results[result.index] = result.text
		done++
	}

	e.log.Debug("batch transliterated",
		zap.Int("texts", len(texts)),
		zap.Int("done", done),
		zap.Int("workers", workers),
		zap.Duration("took", time.Since(start)))

	if done < len(texts) {
		return results, ctx.Err()
	}
	return results, nil
}
