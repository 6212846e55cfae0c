package pipeline

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/theirongolddev/riskdash/internal/risk"
)

// Entry is one applicant to score.
type Entry struct {
	Name  string
	Input risk.Input
}

// Scored pairs an entry with its assessment.
type Scored struct {
	Entry
	Result risk.Result
}

// ProgressFunc is called during batch scoring to report progress.
// current is the number of entries processed so far, total is the total count.
type ProgressFunc func(current, total int)

// ScoreBatch evaluates every entry using a bounded worker pool.
// Results are returned in input order.
func ScoreBatch(entries []Entry, progressFn ProgressFunc) []Scored {
	if len(entries) == 0 {
		return nil
	}

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers < 1 {
		numWorkers = 4
	}
	if numWorkers > len(entries) {
		numWorkers = len(entries)
	}

	work := make(chan int, len(entries))
	results := make([]Scored, len(entries))
	var wg sync.WaitGroup
	var processed atomic.Int64

	for i := range entries {
		work <- i
	}
	close(work)

	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range work {
				results[idx] = Scored{Entry: entries[idx], Result: risk.Evaluate(entries[idx].Input)}
				n := processed.Add(1)
				if progressFn != nil {
					progressFn(int(n), len(entries))
				}
			}
		}()
	}

	wg.Wait()
	return results
}

// BatchSummary counts scored entries per risk level.
type BatchSummary struct {
	Total  int
	Levels map[risk.Level]int
}

// Summarize tallies a scored batch.
func Summarize(scored []Scored) BatchSummary {
	s := BatchSummary{Total: len(scored), Levels: make(map[risk.Level]int)}
	for _, sc := range scored {
		s.Levels[sc.Result.Level]++
	}
	return s
}
