package broker

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okanek/patternkit/logger"
)

var ErrClosed = errors.New("broker is closed")

// Clock abstracts time so message timestamps are testable.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// Message is one published event.
type Message struct {
	ID        string
	Topic     string
	Payload   interface{}
	Published time.Time
}

// Subscription is one subscriber's handle on a topic. Messages arrive on C
// until Unsubscribe or Close closes it.
type Subscription struct {
	ID    string
	Topic string
	C     <-chan Message
}

type subscriber struct {
	id string
	ch chan Message
}

// Broker is an in-process pub/sub hub. Publish never blocks: a subscriber
// whose buffer is full misses the message.
type Broker struct {
	mu     sync.Mutex
	topics map[string]map[string]*subscriber
	buffer int
	clock  Clock
	newID  func() string
	logger logger.Logger
	closed bool
}

type Option interface {
	apply(*Broker)
}

type optionFunc func(*Broker)

func (f optionFunc) apply(b *Broker) {
	f(b)
}

// WithBufferSize sets the per-subscription channel buffer.
func WithBufferSize(n int) Option {
	return optionFunc(func(b *Broker) {
		b.buffer = n
	})
}

// WithClock replaces the clock stamped onto messages.
func WithClock(c Clock) Option {
	return optionFunc(func(b *Broker) {
		b.clock = c
	})
}

// WithLogger sets the logger used by broker operations.
func WithLogger(l logger.Logger) Option {
	return optionFunc(func(b *Broker) {
		b.logger = l
	})
}

// WithIDGenerator replaces the generator for message and subscription ids.
func WithIDGenerator(fn func() string) Option {
	return optionFunc(func(b *Broker) {
		b.newID = fn
	})
}

func New(opts ...Option) *Broker {
	b := &Broker{
		topics: make(map[string]map[string]*subscriber),
		buffer: 16,
		clock:  realClock{},
		newID:  uuid.NewString,
		logger: logger.NewNop(),
	}

	for _, opt := range opts {
		opt.apply(b)
	}

	return b
}

// Subscribe registers a new subscriber on the topic.
func (b *Broker) Subscribe(topic string) (Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return Subscription{}, ErrClosed
	}

	sub := &subscriber{
		id: b.newID(),
		ch: make(chan Message, b.buffer),
	}

	if b.topics[topic] == nil {
		b.topics[topic] = make(map[string]*subscriber)
	}
	b.topics[topic][sub.id] = sub
	b.logger.Debug("Subscribed", logger.LogContext{"topic": topic, "id": sub.id})

	return Subscription{ID: sub.id, Topic: topic, C: sub.ch}, nil
}

// SubscribeAll merges the streams of several topics into one channel. The
// returned cancel function tears down every underlying subscription and
// eventually closes the merged channel.
func (b *Broker) SubscribeAll(topics ...string) (<-chan Message, func(), error) {
	done := make(chan struct{})
	subs := make([]Subscription, 0, len(topics))
	channels := make([]<-chan Message, 0, len(topics))

	for _, topic := range topics {
		sub, err := b.Subscribe(topic)
		if err != nil {
			for _, s := range subs {
				b.Unsubscribe(s)
			}
			return nil, nil, err
		}
		subs = append(subs, sub)
		channels = append(channels, sub.C)
	}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(done)
			for _, s := range subs {
				b.Unsubscribe(s)
			}
		})
	}

	return fanIn(done, channels...), cancel, nil
}

// Unsubscribe removes the subscription and closes its channel. An unknown
// subscription is a no-op.
func (b *Broker) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs, ok := b.topics[sub.Topic]
	if !ok {
		return
	}

	s, ok := subs[sub.ID]
	if !ok {
		return
	}

	delete(subs, sub.ID)
	close(s.ch)
	b.logger.Debug("Unsubscribed", logger.LogContext{"topic": sub.Topic, "id": sub.ID})
}

// Publish stamps and delivers the payload to every subscriber of the topic.
// Delivery is non-blocking; subscribers with a full buffer are skipped.
func (b *Broker) Publish(topic string, payload interface{}) (Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return Message{}, ErrClosed
	}

	msg := Message{
		ID:        b.newID(),
		Topic:     topic,
		Payload:   payload,
		Published: b.clock.Now(),
	}

	for _, sub := range b.topics[topic] {
		select {
		case sub.ch <- msg:
		default:
			b.logger.Warn("Dropping message for slow subscriber", logger.LogContext{
				"topic": topic,
				"id":    sub.id,
			})
		}
	}

	return msg, nil
}

// Close shuts the broker down and closes every subscription channel.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for topic, subs := range b.topics {
		for id, sub := range subs {
			delete(subs, id)
			close(sub.ch)
		}
		delete(b.topics, topic)
	}
	b.logger.Info("Broker closed")
}
