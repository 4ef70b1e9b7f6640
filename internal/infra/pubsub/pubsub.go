package pubsub

import "context"

// Topic names a stream of events, for example "installation_schemas".
type Topic string

// Key partitions a topic. Events about the same installation type or
// installation share a key so they stay ordered.
type Key string

// Message is the value handed to a Publisher.
type Message any

// PublisherFactory builds a Publisher bound to a topic. The prototype selects
// the wire codec.
type PublisherFactory interface {
	New(topic Topic, prototype Message) (Publisher, error)
}

type Publisher interface {
	Publish(ctx context.Context, key Key, message Message) error
}
