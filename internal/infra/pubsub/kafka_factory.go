package pubsub

import "fmt"

var _ PublisherFactory = (*KafkaPublisherFactory)(nil)

func NewKafkaPublisherFactory(brokers []string, codecs codecSource) *KafkaPublisherFactory {
	return &KafkaPublisherFactory{
		brokers: brokers,
		codecs:  codecs,
	}
}

type KafkaPublisherFactory struct {
	brokers []string
	codecs  codecSource
}

func (f *KafkaPublisherFactory) New(topic Topic, prototype Message) (Publisher, error) {
	publisher, err := NewKafkaPublisher(f.brokers, string(topic), prototype, f.codecs)
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	return publisher, nil
}
