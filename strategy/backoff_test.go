package strategy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewExponentialBackoff(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		eb := newExponentialBackoff()

		assert.Equal(t, defaultMinDelay, eb.minDelay, "min delay should default")
		assert.Equal(t, defaultMaxDelay, eb.maxDelay, "max delay should default")
		assert.Equal(t, defaultMaxAttempt, eb.maxAttempt, "attempt budget should default")
		assert.Equal(t, uint8(0), eb.attempt, "a fresh backoff starts at attempt zero")
	})

	t.Run("options override defaults", func(t *testing.T) {
		eb := newExponentialBackoff(
			withMinDelay(time.Millisecond),
			withMaxDelay(time.Second),
			withMaxAttempt(7),
		)

		assert.Equal(t, time.Millisecond, eb.minDelay, "min delay should be overridden")
		assert.Equal(t, time.Second, eb.maxDelay, "max delay should be overridden")
		assert.Equal(t, uint8(7), eb.maxAttempt, "attempt budget should be overridden")
	})
}

func TestBackoffNext(t *testing.T) {
	eb := newExponentialBackoff(
		withMinDelay(10*time.Millisecond),
		withMaxDelay(100*time.Millisecond),
		withRandomImp(fixedRandom{}),
	)

	for attempt := 1; attempt <= 5; attempt++ {
		delay := eb.Next()

		assert.Equal(t, uint8(attempt), eb.attempt, "attempt counter should advance")
		assert.GreaterOrEqual(t, delay, 10*time.Millisecond, "delay should respect the floor")
		assert.LessOrEqual(t, delay, 100*time.Millisecond, "delay should respect the cap")
	}
}

func TestBackoffReset(t *testing.T) {
	eb := newExponentialBackoff(withRandomImp(fixedRandom{}))

	eb.Next()
	eb.Next()
	eb.Reset()

	assert.Equal(t, uint8(0), eb.attempt, "reset should rewind the attempt counter")
}
