package conformance

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/retrostack/z80core/pkg/bus"
	"github.com/retrostack/z80core/pkg/z80"
)

// Task is one unit of sweep work: Iterations random single-step
// executions, seeded for reproducibility — the conformance analogue of
// the teacher's search.SearchTask.
type Task struct {
	Seed       int64
	Iterations int
}

// Violation records a single property failure, with enough context to
// reproduce it.
type Violation struct {
	Property string
	Detail   string
	Seed     int64
	Before   z80.Snapshot
	After    z80.Snapshot
}

// WorkerPool runs Tasks across NumWorkers goroutines, the same
// channel-of-tasks + atomic-counters + ticker-progress shape as the
// teacher's search.WorkerPool, repurposed from sequence search to
// property sweeping.
type WorkerPool struct {
	NumWorkers int

	mu         sync.Mutex
	violations []Violation
	checked    atomic.Int64
	completed  atomic.Int64
}

func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{NumWorkers: numWorkers}
}

// Stats mirrors the teacher's WorkerPool.Stats: steps checked and
// violations found so far.
func (wp *WorkerPool) Stats() (checked, found int64) {
	wp.mu.Lock()
	defer wp.mu.Unlock()
	return wp.checked.Load(), int64(len(wp.violations))
}

// Run executes every task, checking properties after each step, and
// returns every recorded Violation. Progress is logged every 10 seconds
// when verbose, matching the teacher's reporting cadence.
func (wp *WorkerPool) Run(tasks []Task, properties []Property, verbose bool) []Violation {
	total := int64(len(tasks))
	ch := make(chan Task, len(tasks))
	for _, t := range tasks {
		ch <- t
	}
	close(ch)

	done := make(chan struct{})
	start := time.Now()
	if verbose {
		go func() {
			ticker := time.NewTicker(10 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					comp := wp.completed.Load()
					checked, found := wp.Stats()
					fmt.Printf("  [%s] %d/%d tasks | %d steps checked | %d violations\n",
						time.Since(start).Round(time.Second), comp, total, checked, found)
				}
			}
		}()
	}

	var wg sync.WaitGroup
	for i := 0; i < wp.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range ch {
				wp.runTask(task, properties)
				wp.completed.Add(1)
			}
		}()
	}
	wg.Wait()
	close(done)

	wp.mu.Lock()
	defer wp.mu.Unlock()
	out := make([]Violation, len(wp.violations))
	copy(out, wp.violations)
	return out
}

func (wp *WorkerPool) runTask(task Task, properties []Property) {
	rng := rand.New(rand.NewSource(task.Seed))
	b := bus.NewFlat()
	c := z80.New(b, z80.DiscardLogger{})

	for i := 0; i < task.Iterations; i++ {
		// Fill an 8-byte window at a random PC with uniformly random
		// bytes: the core must handle any opcode gracefully regardless
		// of operand meaning — decode must never panic or hang.
		origin := uint16(rng.Intn(65536 - 8))
		c.PC = origin
		for j := 0; j < 8; j++ {
			b.RAM[int(origin)+j] = byte(rng.Intn(256))
		}

		before := c.Snapshot()
		cost := c.Step()
		after := c.Snapshot()
		wp.checked.Add(1)

		for _, p := range properties {
			if ok, detail := p.Check(before, after, cost); !ok {
				wp.mu.Lock()
				wp.violations = append(wp.violations, Violation{
					Property: p.Name, Detail: detail, Seed: task.Seed, Before: before, After: after,
				})
				wp.mu.Unlock()
			}
		}
	}
}
