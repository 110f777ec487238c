// Package sendqueue serializes outbound sends under a fixed-delay
// throttling policy. The external mail provider enforces a small
// per-second quota; a single worker with a minimum inter-item delay is
// the simplest strategy that respects it, so concurrency is deliberately
// absent here.
package sendqueue

import "time"

// Clock abstracts sleeping so the throttling policy can be tested with
// a fake clock.
type Clock interface {
	Sleep(d time.Duration)
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Verdict is the outcome a job reports back to the queue.
type Verdict int

const (
	Delivered Verdict = iota
	Failed
	// RateLimited marks a failure the provider attributed to quota.
	// The failed item is not retried; the verdict only buys extra time
	// for the items that follow.
	RateLimited
)

// Queue runs jobs strictly in order with the configured minimum delay
// between consecutive items. A RateLimited verdict adds one penalty
// delay before the next item; the penalty is flat and never compounds.
type Queue struct {
	delay   time.Duration
	penalty time.Duration
	clock   Clock
}

// New builds a queue. A nil clock selects SystemClock.
func New(delay, penalty time.Duration, clock Clock) *Queue {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Queue{delay: delay, penalty: penalty, clock: clock}
}

// Run invokes job for indexes 0..n-1 sequentially. No delay follows the
// final item. Run always processes every item: a failing job delays
// nothing beyond its verdict's penalty and never aborts the batch.
func (q *Queue) Run(n int, job func(i int) Verdict) {
	for i := 0; i < n; i++ {
		verdict := job(i)
		if i < n-1 {
			q.clock.Sleep(q.delay)
			if verdict == RateLimited {
				q.clock.Sleep(q.penalty)
			}
		}
	}
}
