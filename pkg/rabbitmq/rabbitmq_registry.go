package rabbitmq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Registry holds the publishers and consumers declared in config, keyed by
// alias. It is built once at startup and handed to the components that need
// it; there is no process-global instance.
type Registry struct {
	publishers map[PublisherAlias]IRabbitmqPublisher
	consumers  map[ConsumerAlias]IRabbitmqConsumer
}

func NewRegistry(conn *amqp.Connection, cfg RabbitmqConfig) (*Registry, error) {
	registry := &Registry{
		publishers: make(map[PublisherAlias]IRabbitmqPublisher),
		consumers:  make(map[ConsumerAlias]IRabbitmqConsumer),
	}

	for _, consumer := range cfg.ConsumersConfig {
		channel, err := conn.Channel()
		if err != nil {
			return nil, fmt.Errorf("could not obtain channel for consumer %s: %w", consumer.ConsumerAlias, err)
		}

		if _, err := declareQueue(channel, consumer.QueueName); err != nil {
			return nil, fmt.Errorf("could not declare queue %s: %w", consumer.QueueName, err)
		}

		registry.consumers[consumer.ConsumerAlias] = NewConsumer(
			channel,
			consumer.QueueName,
			consumer.ConsumerTag,
		)
	}

	for _, publisher := range cfg.PublishersConfig {
		channel, err := conn.Channel()
		if err != nil {
			return nil, fmt.Errorf("could not obtain channel for publisher %s: %w", publisher.PublisherAlias, err)
		}

		// Publishing through the default exchange routes straight to the
		// queue named by the routing key, so that queue must exist.
		if publisher.Exchange == "" {
			if _, err := declareQueue(channel, publisher.RoutingKey); err != nil {
				return nil, fmt.Errorf("could not declare queue %s: %w", publisher.RoutingKey, err)
			}
		}

		registry.publishers[publisher.PublisherAlias] = NewPublisher(
			channel,
			publisher.Exchange,
			publisher.RoutingKey,
		)
	}

	return registry, nil
}

func (r *Registry) Publisher(alias PublisherAlias) (IRabbitmqPublisher, error) {
	publisher, ok := r.publishers[alias]
	if !ok {
		return nil, fmt.Errorf("no publisher configured for alias %q", alias)
	}
	return publisher, nil
}

func (r *Registry) Consumer(alias ConsumerAlias) (IRabbitmqConsumer, error) {
	consumer, ok := r.consumers[alias]
	if !ok {
		return nil, fmt.Errorf("no consumer configured for alias %q", alias)
	}
	return consumer, nil
}

func declareQueue(ch *amqp.Channel, name string) (amqp.Queue, error) {
	return ch.QueueDeclare(
		name,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,   // args
	)
}
