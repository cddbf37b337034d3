// Package shotloop implements the caller-level repetition spec.md §5
// assigns to the shot loop: run a circuit `shots` times with
// incrementing seeds and aggregate the outcomes. It is the only place
// in this repository that spawns goroutines, and the only shared
// mutable state — the outcome-count map — is guarded by a mutex, per
// §5's concurrency contract.
package shotloop

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/AUSP59/QuantumSimX/internal/circuit"
	"github.com/AUSP59/QuantumSimX/internal/executor"
)

// Report aggregates shots over a circuit.
type Report struct {
	NumQubits     int
	Shots         int
	Counts        map[string]int
	Probabilities []float64
}

// Run executes c exactly shots times with seeds baseSeed..baseSeed+shots-1,
// spread across workers goroutines (workers<=1 runs sequentially with no
// goroutines at all). Probabilities in the returned Report come from the
// final shot's run result, matching a single `run` call's contract; the
// Counts map is what actually aggregates across shots.
func Run(c *circuit.Circuit, baseSeed uint64, shots, workers int, dense bool) (Report, error) {
	if shots <= 0 {
		return Report{}, fmt.Errorf("shotloop: shots must be positive, got %d", shots)
	}
	if workers <= 1 {
		return runSequential(c, baseSeed, shots, dense)
	}
	return runParallel(c, baseSeed, shots, workers, dense)
}

func runSequential(c *circuit.Circuit, baseSeed uint64, shots int, dense bool) (Report, error) {
	counts := make(map[string]int)
	var lastProbs []float64
	for s := 0; s < shots; s++ {
		r, err := executor.Run(c, baseSeed+uint64(s), dense)
		if err != nil {
			return Report{}, err
		}
		lastProbs = r.Probabilities
		counts[outcomeKey(r.Outcome)]++
	}
	return Report{NumQubits: c.NumQubits, Shots: shots, Counts: counts, Probabilities: lastProbs}, nil
}

func runParallel(c *circuit.Circuit, baseSeed uint64, shots, workers int, dense bool) (Report, error) {
	var (
		mu        sync.Mutex
		counts    = make(map[string]int)
		lastProbs []float64
		next      int64 = -1
		firstErr  error
		errOnce   sync.Once
	)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				s := atomic.AddInt64(&next, 1)
				if int(s) >= shots {
					return
				}
				r, err := executor.Run(c, baseSeed+uint64(s), dense)
				if err != nil {
					errOnce.Do(func() { firstErr = err })
					return
				}
				key := outcomeKey(r.Outcome)
				mu.Lock()
				counts[key]++
				if int(s) == shots-1 {
					lastProbs = r.Probabilities
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if firstErr != nil {
		return Report{}, firstErr
	}
	return Report{NumQubits: c.NumQubits, Shots: shots, Counts: counts, Probabilities: lastProbs}, nil
}

// outcomeKey renders an outcome most-significant-bit-first, per §6's
// "q_{n-1}...q_1 q_0" rendering rule.
func outcomeKey(outcome []int) string {
	if len(outcome) == 0 {
		return ""
	}
	var b strings.Builder
	for i := len(outcome) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "%d", outcome[i])
	}
	return b.String()
}
