package core

// limiter.go bounds how many batches are validated at the same time.
//
// Batches are independent and read-only with respect to the catalog, so they
// can run concurrently; the limit only protects memory and CPU. When all
// slots are taken a caller waits up to maxWait and then gets
// ErrTooManyBatches. WaitForDrain lets a server finish running batches before
// it exits.

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// ErrTooManyBatches is returned when no validation slot frees up in time.
var ErrTooManyBatches = errors.New("too many concurrent batches, please try again later")

const (
	// DefaultMaxConcurrentBatches is the default number of parallel batches.
	DefaultMaxConcurrentBatches = 4
	// DefaultMaxWaitTime is how long to wait for a slot before rejecting.
	DefaultMaxWaitTime = 30 * time.Second
)

// BatchLimiter is a counting semaphore for validation batches.
type BatchLimiter struct {
	slots   chan struct{}
	maxWait time.Duration
	active  atomic.Int64
}

// NewBatchLimiter allows at most maxConcurrent batches at once. Non-positive
// arguments fall back to the defaults.
func NewBatchLimiter(maxConcurrent int, maxWait time.Duration) *BatchLimiter {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrentBatches
	}
	if maxWait <= 0 {
		maxWait = DefaultMaxWaitTime
	}
	return &BatchLimiter{
		slots:   make(chan struct{}, maxConcurrent),
		maxWait: maxWait,
	}
}

// Acquire takes a slot, waiting up to the limiter's maxWait.
// The caller must call Release once the batch is done.
func (l *BatchLimiter) Acquire(ctx context.Context) error {
	timer := time.NewTimer(l.maxWait)
	defer timer.Stop()

	select {
	case l.slots <- struct{}{}:
		l.active.Add(1)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return ErrTooManyBatches
	}
}

// TryAcquire takes a slot only if one is free right now.
func (l *BatchLimiter) TryAcquire() bool {
	select {
	case l.slots <- struct{}{}:
		l.active.Add(1)
		return true
	default:
		return false
	}
}

// Release frees a slot taken by Acquire or TryAcquire.
func (l *BatchLimiter) Release() {
	l.active.Add(-1)
	<-l.slots
}

// Do runs fn while holding a slot.
func (l *BatchLimiter) Do(ctx context.Context, fn func() error) error {
	if err := l.Acquire(ctx); err != nil {
		return err
	}
	defer l.Release()
	return fn()
}

// ActiveCount returns the number of batches currently holding a slot.
func (l *BatchLimiter) ActiveCount() int { return int(l.active.Load()) }

// MaxConcurrent returns the slot count.
func (l *BatchLimiter) MaxConcurrent() int { return cap(l.slots) }

// Available returns the number of free slots.
func (l *BatchLimiter) Available() int { return cap(l.slots) - len(l.slots) }

// WaitForDrain blocks until no batch holds a slot or ctx is done.
func (l *BatchLimiter) WaitForDrain(ctx context.Context) error {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for l.ActiveCount() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

// LimiterStatus is a snapshot of the limiter for health endpoints.
type LimiterStatus struct {
	Active        int `json:"active"`
	Available     int `json:"available"`
	MaxConcurrent int `json:"maxConcurrent"`
}

// Status returns the current limiter state.
func (l *BatchLimiter) Status() LimiterStatus {
	return LimiterStatus{
		Active:        l.ActiveCount(),
		Available:     l.Available(),
		MaxConcurrent: l.MaxConcurrent(),
	}
}
