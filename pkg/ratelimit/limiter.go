package ratelimit

import (
	"sync"
	"time"
)

// Limiter defines the interface for request pacing.
type Limiter interface {
	// Wait blocks until the next request is allowed to go out.
	Wait()
	// Reset forgets the last request time.
	Reset()
}

// Interval enforces a minimum spacing between consecutive requests. The
// spacing is tracked per limiter instance and applies to every call,
// including retries, so a retry storm cannot exceed the pacing budget.
type Interval struct {
	minInterval time.Duration
	last        time.Time
	mu          sync.Mutex

	now   func() time.Time
	sleep func(time.Duration)
}

// NewInterval creates a limiter that keeps at least minInterval between
// requests.
func NewInterval(minInterval time.Duration) *Interval {
	return &Interval{
		minInterval: minInterval,
		now:         time.Now,
		sleep:       time.Sleep,
	}
}

// Wait blocks until at least the minimum interval has elapsed since the last
// request, then records the new request time.
func (l *Interval) Wait() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.last.IsZero() {
		if elapsed := l.now().Sub(l.last); elapsed < l.minInterval {
			l.sleep(l.minInterval - elapsed)
		}
	}
	l.last = l.now()
}

// Reset clears the recorded request time.
func (l *Interval) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.last = time.Time{}
}

// Nop is a limiter that never blocks, useful in tests.
type Nop struct{}

func (Nop) Wait()  {}
func (Nop) Reset() {}
