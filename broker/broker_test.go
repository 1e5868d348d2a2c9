package broker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okanek/patternkit/logger"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func receiveOne(t *testing.T, ch <-chan Message) Message {
	t.Helper()

	select {
	case msg, ok := <-ch:
		require.True(t, ok, "channel closed before a message arrived")
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a message")
		return Message{}
	}
}

func assertNoMessage(t *testing.T, ch <-chan Message) {
	t.Helper()

	select {
	case msg, ok := <-ch:
		if ok {
			t.Fatalf("unexpected message: %+v", msg)
		}
	default:
	}
}

func TestPublishSubscribe(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	b := New(WithClock(fixedClock{now: now}), WithLogger(logger.NewMockLogger(t)))
	defer b.Close()

	sub, err := b.Subscribe("sensors")
	require.NoError(t, err, "subscribe should succeed")
	assert.NotEmpty(t, sub.ID, "subscription should carry an id")

	published, err := b.Publish("sensors", "reading")
	require.NoError(t, err, "publish should succeed")

	msg := receiveOne(t, sub.C)
	assert.Equal(t, published, msg, "subscriber should see the published message")
	assert.Equal(t, "sensors", msg.Topic, "message should carry its topic")
	assert.Equal(t, "reading", msg.Payload, "message should carry its payload")
	assert.Equal(t, now, msg.Published, "message should be stamped by the clock")
}

func TestPublishReachesAllSubscribers(t *testing.T) {
	b := New()
	defer b.Close()

	first, err := b.Subscribe("alerts")
	require.NoError(t, err)
	second, err := b.Subscribe("alerts")
	require.NoError(t, err)
	other, err := b.Subscribe("metrics")
	require.NoError(t, err)

	_, err = b.Publish("alerts", "fire")
	require.NoError(t, err)

	assert.Equal(t, "fire", receiveOne(t, first.C).Payload, "first subscriber should receive")
	assert.Equal(t, "fire", receiveOne(t, second.C).Payload, "second subscriber should receive")
	assertNoMessage(t, other.C)
}

func TestPublishDropsWhenBufferFull(t *testing.T) {
	b := New(WithBufferSize(1))
	defer b.Close()

	sub, err := b.Subscribe("sensors")
	require.NoError(t, err)

	_, err = b.Publish("sensors", "first")
	require.NoError(t, err)
	_, err = b.Publish("sensors", "second")
	require.NoError(t, err, "publish must not block on a full buffer")

	assert.Equal(t, "first", receiveOne(t, sub.C).Payload, "buffered message should arrive")
	assertNoMessage(t, sub.C)
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	defer b.Close()

	sub, err := b.Subscribe("sensors")
	require.NoError(t, err)

	b.Unsubscribe(sub)

	_, ok := <-sub.C
	assert.False(t, ok, "channel should be closed after unsubscribe")

	_, err = b.Publish("sensors", "reading")
	assert.NoError(t, err, "publishing to a topic without subscribers is fine")

	b.Unsubscribe(sub)
}

func TestSubscribeAll(t *testing.T) {
	b := New()
	defer b.Close()

	merged, cancel, err := b.SubscribeAll("alerts", "metrics")
	require.NoError(t, err, "multi-topic subscribe should succeed")
	defer cancel()

	_, err = b.Publish("alerts", "fire")
	require.NoError(t, err)
	_, err = b.Publish("metrics", "cpu")
	require.NoError(t, err)

	got := map[string]interface{}{}
	for i := 0; i < 2; i++ {
		msg := receiveOne(t, merged)
		got[msg.Topic] = msg.Payload
	}

	assert.Equal(t, map[string]interface{}{"alerts": "fire", "metrics": "cpu"}, got,
		"merged stream should carry both topics")
}

func TestClose(t *testing.T) {
	b := New()

	sub, err := b.Subscribe("sensors")
	require.NoError(t, err)

	b.Close()

	_, ok := <-sub.C
	assert.False(t, ok, "close should close subscription channels")

	_, err = b.Publish("sensors", "reading")
	assert.ErrorIs(t, err, ErrClosed, "publish after close should be rejected")

	_, err = b.Subscribe("sensors")
	assert.ErrorIs(t, err, ErrClosed, "subscribe after close should be rejected")

	b.Close()
}

func TestMessageIDsAreUnique(t *testing.T) {
	b := New()
	defer b.Close()

	first, err := b.Publish("sensors", 1)
	require.NoError(t, err)
	second, err := b.Publish("sensors", 2)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID, "messages must not share an id")
}
