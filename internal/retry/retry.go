// Package retry provides a bounded retry decorator with exponential backoff
// and randomized jitter, for wrapping transient-failure-prone network calls.
package retry

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	DefaultAttempts     = 5
	DefaultInitialDelay = 5 * time.Second
	DefaultMultiplier   = 1.2
	DefaultJitterMin    = 1 * time.Second
	DefaultJitterMax    = 3 * time.Second
)

// Policy describes how an operation is retried. Attempts counts total
// attempts, not retries; values below 1 are treated as 1.
type Policy struct {
	Attempts     int
	InitialDelay time.Duration
	Multiplier   float64
	JitterMin    time.Duration
	JitterMax    time.Duration

	// sleep is swapped out in tests to avoid real waiting.
	sleep func(ctx context.Context, d time.Duration) error
}

// DefaultPolicy returns the standard policy: 5 attempts, 5s initial delay,
// 1.2x backoff, plus 1-3s of jitter on every delay.
func DefaultPolicy() Policy {
	return Policy{
		Attempts:     DefaultAttempts,
		InitialDelay: DefaultInitialDelay,
		Multiplier:   DefaultMultiplier,
		JitterMin:    DefaultJitterMin,
		JitterMax:    DefaultJitterMax,
	}
}

// Do runs op, retrying on any error until p.Attempts is exhausted. The delay
// before the first retry is InitialDelay, multiplied by Multiplier after each
// failed attempt, with a random jitter from [JitterMin, JitterMax] added on
// top of every delay. Any error is treated as retryable at this layer;
// exhausting all attempts returns the last error. Context cancellation stops
// the loop immediately.
func (p Policy) Do(ctx context.Context, op func(ctx context.Context) error) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}
	multiplier := p.Multiplier
	if multiplier <= 0 {
		multiplier = 1
	}
	sleep := p.sleep
	if sleep == nil {
		sleep = sleepContext
	}

	var lastErr error
	delay := p.InitialDelay
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			if err := sleep(ctx, delay+p.jitter()); err != nil {
				return err
			}
			delay = time.Duration(float64(delay) * multiplier)
		}

		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	return fmt.Errorf("all %d attempts failed: %w", attempts, lastErr)
}

// Wrap returns a retrying version of op governed by p.
func Wrap(p Policy, op func(ctx context.Context) error) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return p.Do(ctx, op)
	}
}

func (p Policy) jitter() time.Duration {
	if p.JitterMax <= p.JitterMin {
		return p.JitterMin
	}
	return p.JitterMin + rand.N(p.JitterMax-p.JitterMin)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
