// Package scheduler implements a worker pool for executing async work with futures.
//
// The scheduler replaces a thread-per-invocation model with a fixed pool:
// work is submitted via AddWork (or AddWorkWithTimeout) and returns a Future
// used to retrieve the single result or cancel the work. The submitting
// goroutine never blocks waiting on a worker.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────────┐
//	│                           Scheduler                                 │
//	│                                                                     │
//	│  ┌──────────────┐      ┌──────────────┐      ┌──────────────┐       │
//	│  │   Worker 1   │      │   Worker 2   │      │   Worker N   │       │
//	│  └──────────────┘      └──────────────┘      └──────────────┘       │
//	│         ▲                     ▲                     ▲               │
//	│         │                     │                     │               │
//	│         └─────────────────────┼─────────────────────┘               │
//	│                               │                                     │
//	│                        ┌──────┴──────┐                              │
//	│                        │  dispatch() │                              │
//	│                        └──────┬──────┘                              │
//	│                               │                                     │
//	│  ┌────────────────────────────┴────────────────────────────┐        │
//	│  │                      Work Queue                         │        │
//	│  │  [work1] [work2] [work3] ...                            │        │
//	│  └─────────────────────────────────────────────────────────┘        │
//	│                               ▲                                     │
//	│                               │                                     │
//	│                  AddWork(fn) / AddWorkWithTimeout(fn, d)            │
//	└─────────────────────────────────────────────────────────────────────┘
//
// # Guarantees
//
//   - Exactly one Result is delivered per submission, carrying either the
//     work's value or its error. The result channel is buffered so delivery
//     never blocks a worker.
//   - Submissions are independent: no shared state between in-flight work,
//     and completions may arrive out of submission order. Callers needing
//     sequencing chain the second submission from the first future.
//   - Panics in work functions are recovered and reported as errors; the
//     worker returns to the pool.
//
// # Cancellation and timeouts
//
// Each work request gets a context derived from the scheduler's main
// context:
//
//	future.Stop()              → cancels that work's context
//	AddWorkWithTimeout(fn, d)  → context cancelled after d
//	scheduler.Close()          → cancels the main context (all work)
//
// Work functions should check ctx.Done() at their blocking points.
//
// # Graceful Shutdown
//
// Close cancels the main context, waits for in-flight workers, then stops
// the event loop. Close is idempotent. AddWork after Close resolves the
// returned future with context.Canceled.
//
// # Usage Example
//
//	sched := scheduler.NewScheduler(4)
//	defer sched.Close()
//
//	future := sched.AddWork(func(ctx context.Context) (any, error) {
//	    return gw.Statistics(ctx)
//	})
//
//	result := <-future.C()
//	if result.Err != nil {
//	    log.Printf("work failed: %v", result.Err)
//	}
package scheduler
