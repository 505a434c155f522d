package audit

import (
	"fmt"
	"os"

	"claims-processor/pkg/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
)

const LogConsumerAlias rabbitmq.ConsumerAlias = "LogConsumer"

// LogSinkWorker drains the ops-logs queue into the audit table. Failures are
// reported on stderr, not through the logger, to avoid feeding the queue it
// consumes.
type LogSinkWorker struct {
	consumer rabbitmq.IRabbitmqConsumer
	service  *Service
}

func NewLogSinkWorker(registry *rabbitmq.Registry, service *Service) (*LogSinkWorker, error) {
	consumer, err := registry.Consumer(LogConsumerAlias)
	if err != nil {
		return nil, err
	}
	return &LogSinkWorker{consumer: consumer, service: service}, nil
}

func (w *LogSinkWorker) GetServiceName() string {
	return "LogSinkWorker"
}

func (w *LogSinkWorker) StartService() {
	w.consumer.StartConsuming(w.HandleDelivery)
}

func (w *LogSinkWorker) HandleDelivery(delivery amqp.Delivery) {
	if err := w.service.ProcessLogMessage(delivery.Body); err != nil {
		fmt.Fprintf(os.Stderr, "log audit store failed: %v\n", err)
		if nackErr := delivery.Nack(false, false); nackErr != nil {
			fmt.Fprintf(os.Stderr, "log audit nack failed: %v\n", nackErr)
		}
		return
	}

	if err := delivery.Ack(false); err != nil {
		fmt.Fprintf(os.Stderr, "log audit ack failed: %v\n", err)
	}
}
