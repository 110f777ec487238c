package sendqueue

import (
	"testing"
	"time"
)

type fakeClock struct {
	sleeps []time.Duration
}

func (f *fakeClock) Sleep(d time.Duration) {
	f.sleeps = append(f.sleeps, d)
}

const (
	testDelay   = 650 * time.Millisecond
	testPenalty = 2 * time.Second
)

func TestRunDelaysBetweenItems(t *testing.T) {
	clock := &fakeClock{}
	q := New(testDelay, testPenalty, clock)

	var order []int
	q.Run(3, func(i int) Verdict {
		order = append(order, i)
		return Delivered
	})

	if len(order) != 3 || order[0] != 0 || order[2] != 2 {
		t.Fatalf("jobs ran out of order: %v", order)
	}
	// N-1 delays for N items, no trailing delay.
	if len(clock.sleeps) != 2 {
		t.Fatalf("sleeps = %v, want 2 inter-item delays", clock.sleeps)
	}
	for _, d := range clock.sleeps {
		if d != testDelay {
			t.Fatalf("unexpected delay %v, want %v", d, testDelay)
		}
	}
}

func TestRunSingleItemNoDelay(t *testing.T) {
	clock := &fakeClock{}
	q := New(testDelay, testPenalty, clock)

	q.Run(1, func(int) Verdict { return Delivered })
	if len(clock.sleeps) != 0 {
		t.Fatalf("single item slept: %v", clock.sleeps)
	}
}

func TestRunRateLimitPenaltyIsOneShot(t *testing.T) {
	clock := &fakeClock{}
	q := New(testDelay, testPenalty, clock)

	// Item 1 rate-limited: one penalty before item 2, none before item 3.
	q.Run(3, func(i int) Verdict {
		if i == 1 {
			return RateLimited
		}
		return Delivered
	})

	want := []time.Duration{testDelay, testDelay, testPenalty}
	if len(clock.sleeps) != len(want) {
		t.Fatalf("sleeps = %v, want %v", clock.sleeps, want)
	}
	for i, d := range want {
		if clock.sleeps[i] != d {
			t.Fatalf("sleep[%d] = %v, want %v (all: %v)", i, clock.sleeps[i], d, clock.sleeps)
		}
	}
}

func TestRunRepeatedRateLimitDoesNotEscalate(t *testing.T) {
	clock := &fakeClock{}
	q := New(testDelay, testPenalty, clock)

	q.Run(3, func(int) Verdict { return RateLimited })

	// Flat penalty per occurrence, never compounding.
	want := []time.Duration{testDelay, testPenalty, testDelay, testPenalty}
	if len(clock.sleeps) != len(want) {
		t.Fatalf("sleeps = %v, want %v", clock.sleeps, want)
	}
	for i, d := range want {
		if clock.sleeps[i] != d {
			t.Fatalf("sleep[%d] = %v, want %v", i, clock.sleeps[i], d)
		}
	}
}

func TestRunFailuresNeverAbort(t *testing.T) {
	clock := &fakeClock{}
	q := New(testDelay, testPenalty, clock)

	ran := 0
	q.Run(4, func(int) Verdict {
		ran++
		return Failed
	})
	if ran != 4 {
		t.Fatalf("ran %d of 4 jobs", ran)
	}
}
