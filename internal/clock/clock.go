// Package clock provides the wall-clock source used by the scheduler.
package clock

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Clock tells the time and suspends until a point in time.
type Clock interface {
	Now() time.Time
	// SleepUntil blocks until t is reached or ctx is done, returning ctx.Err() in the latter case.
	SleepUntil(ctx context.Context, t time.Time) error
}

// System is the real clock, reporting times in a fixed location.
type System struct {
	loc *time.Location
}

func NewSystem(loc *time.Location) *System {
	if loc == nil {
		loc = time.UTC
	}
	return &System{loc: loc}
}

func (s *System) Now() time.Time {
	return time.Now().In(s.loc)
}

func (s *System) SleepUntil(ctx context.Context, t time.Time) error {
	d := time.Until(t)
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Fake is a manually driven clock for tests.
type Fake struct {
	mu      sync.Mutex
	cond    *sync.Cond
	now     time.Time
	waiters []*waiter
}

type waiter struct {
	until time.Time
	ch    chan struct{}
}

func NewFake(now time.Time) *Fake {
	f := &Fake{now: now}
	f.cond = sync.NewCond(&f.mu)
	return f
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fake) SleepUntil(ctx context.Context, t time.Time) error {
	f.mu.Lock()
	if !t.After(f.now) {
		f.mu.Unlock()
		return ctx.Err()
	}
	w := &waiter{until: t, ch: make(chan struct{})}
	f.waiters = append(f.waiters, w)
	f.cond.Broadcast()
	f.mu.Unlock()

	select {
	case <-w.ch:
		return nil
	case <-ctx.Done():
		f.mu.Lock()
		f.remove(w)
		f.cond.Broadcast()
		f.mu.Unlock()
		return ctx.Err()
	}
}

// Set moves the clock to t, waking every sleeper whose deadline is reached.
func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = t
	sort.Slice(f.waiters, func(i, j int) bool { return f.waiters[i].until.Before(f.waiters[j].until) })

	pending := f.waiters[:0]
	for _, w := range f.waiters {
		if w.until.After(f.now) {
			pending = append(pending, w)
			continue
		}
		close(w.ch)
	}
	f.waiters = pending
	f.cond.Broadcast()
}

// Advance moves the clock forward by d.
func (f *Fake) Advance(d time.Duration) {
	f.Set(f.Now().Add(d))
}

// BlockUntilSleepers waits until exactly n goroutines are blocked in SleepUntil.
func (f *Fake) BlockUntilSleepers(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for len(f.waiters) != n {
		f.cond.Wait()
	}
}

// Sleepers returns the deadlines of the goroutines currently asleep, earliest first.
func (f *Fake) Sleepers() []time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]time.Time, 0, len(f.waiters))
	for _, w := range f.waiters {
		out = append(out, w.until)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

func (f *Fake) remove(w *waiter) {
	for i, other := range f.waiters {
		if other == w {
			f.waiters = append(f.waiters[:i], f.waiters[i+1:]...)
			return
		}
	}
}
