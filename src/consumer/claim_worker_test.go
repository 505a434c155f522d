package consumer

import (
	"errors"
	"fmt"
	"testing"

	"claims-processor/pkg/logger"
	"claims-processor/src/dto"
	"claims-processor/src/processor"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.InitDefaultLogger(logger.GlobalLoggerConfig{})
	m.Run()
}

type fakeAcknowledger struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (f *fakeAcknowledger) Ack(uint64, bool) error {
	f.acked = true
	return nil
}

func (f *fakeAcknowledger) Nack(_ uint64, _ bool, requeue bool) error {
	f.nacked = true
	f.requeue = requeue
	return nil
}

func (f *fakeAcknowledger) Reject(_ uint64, requeue bool) error {
	f.nacked = true
	f.requeue = requeue
	return nil
}

func newTestWorker(process func(dto.ClaimSubmission) error) *ClaimWorker {
	return &ClaimWorker{
		name:    "TestWorker",
		queue:   "claim-submissions",
		process: process,
		logger:  logger.Default(),
	}
}

func delivery(body string) (amqp.Delivery, *fakeAcknowledger) {
	ack := &fakeAcknowledger{}
	return amqp.Delivery{Acknowledger: ack, Body: []byte(body)}, ack
}

const validBody = `{
	"policyNumber": "POL001",
	"claimType": "ACCIDENT",
	"incidentDate": "2026-01-15",
	"claimedAmount": "2500.00",
	"description": "Fender bender"
}`

func TestHandleDeliveryAcksOnSuccess(t *testing.T) {
	var received dto.ClaimSubmission
	worker := newTestWorker(func(submission dto.ClaimSubmission) error {
		received = submission
		return nil
	})

	d, ack := delivery(validBody)
	worker.HandleDelivery(d)

	assert.True(t, ack.acked)
	assert.False(t, ack.nacked)
	assert.Equal(t, "POL001", received.PolicyNumber)
}

func TestHandleDeliveryDiscardsMalformedPayload(t *testing.T) {
	called := false
	worker := newTestWorker(func(dto.ClaimSubmission) error {
		called = true
		return nil
	})

	d, ack := delivery(`{not json`)
	worker.HandleDelivery(d)

	assert.False(t, called, "processing must not run for malformed payloads")
	require.True(t, ack.nacked)
	assert.False(t, ack.requeue, "malformed payloads must not be requeued")
}

func TestHandleDeliveryDiscardsInvalidClaimType(t *testing.T) {
	worker := newTestWorker(func(dto.ClaimSubmission) error { return nil })

	d, ack := delivery(`{"policyNumber": "POL001", "claimType": "BOGUS"}`)
	worker.HandleDelivery(d)

	require.True(t, ack.nacked)
	assert.False(t, ack.requeue)
}

func TestHandleDeliveryDropsUnknownPolicy(t *testing.T) {
	worker := newTestWorker(func(dto.ClaimSubmission) error {
		return &processor.ProcessingError{
			ClaimNumber: "CLM-TEST0001",
			Code:        processor.CodePolicyNotFound,
			Err:         fmt.Errorf("%w: POL999", processor.ErrPolicyNotFound),
		}
	})

	d, ack := delivery(validBody)
	worker.HandleDelivery(d)

	require.True(t, ack.nacked)
	assert.False(t, ack.requeue, "unknown policy is permanent, must not be requeued")
}

func TestHandleDeliveryRequeuesTransientFailure(t *testing.T) {
	worker := newTestWorker(func(dto.ClaimSubmission) error {
		return &processor.ProcessingError{
			ClaimNumber: "CLM-TEST0001",
			Code:        processor.CodePersistence,
			Err:         errors.New("database unavailable"),
		}
	})

	d, ack := delivery(validBody)
	worker.HandleDelivery(d)

	require.True(t, ack.nacked)
	assert.True(t, ack.requeue, "transient failures must be requeued")
	assert.False(t, ack.acked)
}
