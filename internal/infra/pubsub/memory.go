package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Messages kept per topic before the oldest are dropped.
const _memoryRetention = 1000

var _ PublisherFactory = (*MemoryPublisherFactory)(nil)

// MemoryPublisherFactory publishes into the process wide MemoryBroker.
type MemoryPublisherFactory struct {
	broker *MemoryBroker
}

func NewMemoryPublisherFactory() *MemoryPublisherFactory {
	return &MemoryPublisherFactory{broker: GetMemoryBroker()}
}

func (f *MemoryPublisherFactory) New(topic Topic, _ Message) (Publisher, error) {
	return &MemoryPublisher{broker: f.broker, topic: topic}, nil
}

var _ Publisher = (*MemoryPublisher)(nil)

type MemoryPublisher struct {
	broker *MemoryBroker
	topic  Topic
}

func (p *MemoryPublisher) Publish(ctx context.Context, key Key, message Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.broker.Append(p.topic, key, message)
	return nil
}

// Envelope is one message held by the MemoryBroker.
type Envelope struct {
	Key         Key
	Message     Message
	PublishedAt time.Time
}

// MemoryBroker stands in for Kafka in the local environment. It keeps the
// most recent messages of every topic in publish order.
type MemoryBroker struct {
	mu        sync.Mutex
	topics    map[Topic][]Envelope
	retention int
}

var (
	memoryBroker     *MemoryBroker
	memoryBrokerOnce sync.Once
)

func GetMemoryBroker() *MemoryBroker {
	memoryBrokerOnce.Do(func() {
		memoryBroker = NewMemoryBroker(_memoryRetention)
	})
	return memoryBroker
}

func NewMemoryBroker(retention int) *MemoryBroker {
	if retention <= 0 {
		retention = _memoryRetention
	}
	return &MemoryBroker{
		topics:    make(map[Topic][]Envelope),
		retention: retention,
	}
}

func (b *MemoryBroker) Append(topic Topic, key Key, message Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	log := append(b.topics[topic], Envelope{Key: key, Message: message, PublishedAt: time.Now()})
	if overflow := len(log) - b.retention; overflow > 0 {
		log = append([]Envelope(nil), log[overflow:]...)
	}
	b.topics[topic] = log

	slog.Debug("message kept in memory broker",
		slog.String("topic", string(topic)),
		slog.String("key", string(key)),
	)
}

// Messages returns a copy of what is retained for topic, oldest first.
func (b *MemoryBroker) Messages(topic Topic) []Envelope {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]Envelope(nil), b.topics[topic]...)
}

// Reset drops every retained message.
func (b *MemoryBroker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.topics = make(map[Topic][]Envelope)
}
