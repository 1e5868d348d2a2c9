package strategy

import (
	"context"
	"math"
	"math/rand"
	"time"
)

type randomWrapper interface {
	Int63n(n int64) int64
}

type defaultRandom struct{}

func (r *defaultRandom) Int63n(n int64) int64 {
	return rand.Int63n(n)
}

type jitterBackoff func(attempt uint8) time.Duration

type exponentialBackoff struct {
	minDelay   time.Duration
	maxDelay   time.Duration
	multiplier float64
	attempt    uint8
	maxAttempt uint8

	random  randomWrapper
	backoff jitterBackoff
}

var (
	defaultMinDelay     = 100 * time.Millisecond
	defaultMaxDelay     = 10 * time.Second
	defaultMultiplier   = 2.0
	defaultMaxAttempt   = uint8(3)
	defaultRandomStruct = &defaultRandom{}
)

type exponentialBackoffOptionFunc func(*exponentialBackoff) error

func withMinDelay(d time.Duration) exponentialBackoffOptionFunc {
	return func(eb *exponentialBackoff) error {
		eb.minDelay = d
		return nil
	}
}

func withMaxDelay(d time.Duration) exponentialBackoffOptionFunc {
	return func(eb *exponentialBackoff) error {
		eb.maxDelay = d
		return nil
	}
}

func withMaxAttempt(a uint8) exponentialBackoffOptionFunc {
	return func(eb *exponentialBackoff) error {
		eb.maxAttempt = a
		return nil
	}
}

func withRandomImp(r randomWrapper) exponentialBackoffOptionFunc {
	return func(eb *exponentialBackoff) error {
		eb.random = r
		return nil
	}
}

func newExponentialBackoff(optFns ...exponentialBackoffOptionFunc) *exponentialBackoff {
	eb := &exponentialBackoff{
		minDelay:   defaultMinDelay,
		maxDelay:   defaultMaxDelay,
		multiplier: defaultMultiplier,
		maxAttempt: defaultMaxAttempt,
		random:     defaultRandomStruct,
	}

	for _, optFn := range optFns {
		_ = optFn(eb)
	}

	eb.backoff = fullJitterBuilder(eb.minDelay, eb.maxDelay, eb.multiplier, eb.random)
	eb.Reset()

	return eb
}

func (eb *exponentialBackoff) Reset() {
	eb.attempt = 0
}

func (eb *exponentialBackoff) Next() time.Duration {
	eb.attempt++
	return eb.backoff(eb.attempt)
}

func fullJitterBuilder(minDelay time.Duration, capacity time.Duration, multiplier float64, random randomWrapper) jitterBackoff {
	return func(attempt uint8) time.Duration {
		cap := float64(capacity)
		att := float64(attempt)
		base := float64(minDelay)

		temp := math.Min(cap, base*math.Pow(att, multiplier))
		diff := int64(temp) - int64(base)
		if diff <= 0 {
			diff = 1
		}
		sleep := random.Int63n(diff) + int64(base)

		return time.Duration(sleep)
	}
}

type retryableFunc func() error

// retry runs op until it succeeds, the error stops being transient, the
// attempt budget runs out, or the context is canceled.
func retry(ctx context.Context, op retryableFunc, eb *exponentialBackoff, transient func(error) bool) error {
	var lastErr error

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			lastErr = op()
			if lastErr == nil {
				return nil
			}
			if !transient(lastErr) {
				return lastErr
			}
		}

		if eb.attempt >= eb.maxAttempt {
			break
		}

		delay := eb.Next()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return lastErr
}
