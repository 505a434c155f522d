package consumer

import (
	"encoding/json"
	"errors"

	"claims-processor/pkg/logger"
	"claims-processor/pkg/rabbitmq"
	"claims-processor/src/dto"
	"claims-processor/src/metrics"
	"claims-processor/src/processor"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ClaimSubmissionsConsumerAlias   rabbitmq.ConsumerAlias = "ClaimSubmissionsConsumer"
	HighPriorityClaimsConsumerAlias rabbitmq.ConsumerAlias = "HighPriorityClaimsConsumer"

	outcomeProcessed = "processed"
	outcomeMalformed = "malformed"
	outcomeRejected  = "rejected"
	outcomeRequeued  = "requeued"
)

// ClaimWorker drains one intake queue and feeds each submission into a
// processing lane. Ack policy: malformed payloads and rejected claims are
// dead-ended without requeue, transient processing failures are requeued.
type ClaimWorker struct {
	name     string
	queue    string
	consumer rabbitmq.IRabbitmqConsumer
	process  func(dto.ClaimSubmission) error
	logger   *logger.Logger
}

func NewClaimSubmissionWorker(registry *rabbitmq.Registry, proc *processor.Processor) (*ClaimWorker, error) {
	consumer, err := registry.Consumer(ClaimSubmissionsConsumerAlias)
	if err != nil {
		return nil, err
	}
	return &ClaimWorker{
		name:     "ClaimSubmissionWorker",
		queue:    "claim-submissions",
		consumer: consumer,
		process:  proc.ProcessClaimSubmission,
		logger:   logger.Default(),
	}, nil
}

func NewHighPriorityClaimWorker(registry *rabbitmq.Registry, proc *processor.Processor) (*ClaimWorker, error) {
	consumer, err := registry.Consumer(HighPriorityClaimsConsumerAlias)
	if err != nil {
		return nil, err
	}
	return &ClaimWorker{
		name:     "HighPriorityClaimWorker",
		queue:    "high-priority-claims",
		consumer: consumer,
		process:  proc.ProcessHighPriorityClaim,
		logger:   logger.Default(),
	}, nil
}

func (w *ClaimWorker) GetServiceName() string {
	return w.name
}

func (w *ClaimWorker) StartService() {
	w.consumer.StartConsuming(w.HandleDelivery)
}

func (w *ClaimWorker) HandleDelivery(delivery amqp.Delivery) {
	var submission dto.ClaimSubmission
	if err := json.Unmarshal(delivery.Body, &submission); err != nil {
		w.logger.Errorf(err, "[%s] Discarding malformed message from %s", w.name, w.queue)
		metrics.MessagesConsumed.WithLabelValues(w.queue, outcomeMalformed).Inc()
		w.nack(delivery, false)
		return
	}

	if err := w.process(submission); err != nil {
		if errors.Is(err, processor.ErrPolicyNotFound) {
			w.logger.Warnf("[%s] Rejecting claim with unknown policy: %v", w.name, err)
			metrics.MessagesConsumed.WithLabelValues(w.queue, outcomeRejected).Inc()
			w.nack(delivery, false)
			return
		}

		w.logger.Errorf(err, "[%s] Processing failed, requeueing message", w.name)
		metrics.MessagesConsumed.WithLabelValues(w.queue, outcomeRequeued).Inc()
		w.nack(delivery, true)
		return
	}

	metrics.MessagesConsumed.WithLabelValues(w.queue, outcomeProcessed).Inc()
	if err := delivery.Ack(false); err != nil {
		w.logger.Errorf(err, "[%s] Failed to ack message", w.name)
	}
}

func (w *ClaimWorker) nack(delivery amqp.Delivery, requeue bool) {
	if err := delivery.Nack(false, requeue); err != nil {
		w.logger.Errorf(err, "[%s] Failed to nack message", w.name)
	}
}
