package rabbitmq

import (
	"sync"

	"claims-processor/pkg/logger"
	"claims-processor/pkg/utilities"

	amqp "github.com/rabbitmq/amqp091-go"
)

type ConsumerAlias string

type RabbitmqConsumer struct {
	Channel     *amqp.Channel
	QueueName   string
	ConsumerTag string
}

// IRabbitmqConsumer delivers messages without acknowledging them: the handler
// owns the Ack/Nack decision for every delivery it receives.
type IRabbitmqConsumer interface {
	StartConsuming(func(amqp.Delivery))
}

func NewConsumer(ch *amqp.Channel, queueName, consumerTag string) *RabbitmqConsumer {
	return &RabbitmqConsumer{
		Channel:     ch,
		QueueName:   queueName,
		ConsumerTag: consumerTag,
	}
}

func (rc *RabbitmqConsumer) StartConsuming(messageHandler func(amqp.Delivery)) {
	defer func() {
		if r := recover(); r != nil {
			logger.Default().Errorf(
				nil,
				"[%s] Recovered from panic for consumer: %s, %v",
				rc.QueueName,
				rc.ConsumerTag,
				r,
			)
		}
	}()

	msgs, err := rc.Channel.Consume(
		rc.QueueName,   // queue
		rc.ConsumerTag, // consumer
		false,          // auto-ack
		false,          // exclusive
		false,          // no-local
		false,          // no-wait
		nil,            // args
	)
	utilities.FailOnError(err, "Failed to register a consumer")

	consumerLogger := logger.Default()
	consumerLogger.Infof("Waiting for messages in queue: %s", rc.QueueName)
	var waitGroup sync.WaitGroup

	waitGroup.Add(1)

	go func() {
		defer waitGroup.Done()
		for d := range msgs {
			messageHandler(d)
		}
	}()

	waitGroup.Wait()
}
