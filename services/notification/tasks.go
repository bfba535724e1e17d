package notification

import (
	"encoding/json"
	"fmt"

	"travelogue/models"

	"github.com/hibiken/asynq"
)

// TypeEmailSend is the asynq task type for outbound notification emails.
const TypeEmailSend = "email:send"

// NewEmailTask builds an asynq task carrying a serialized email payload.
func NewEmailTask(payload models.EmailPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeEmailSend, b), nil
}

// QueueNotifier enqueues notification emails onto the asynq queue instead of
// sending inline, so slow SMTP never stalls a booking request.
type QueueNotifier struct {
	client *asynq.Client
}

// NewQueueNotifier creates a queue-backed Notifier.
func NewQueueNotifier(client *asynq.Client) *QueueNotifier {
	return &QueueNotifier{client: client}
}

func (n *QueueNotifier) SendBookingConfirmation(booking models.Booking, trip models.Trip) error {
	return n.enqueue(models.EmailPayload{
		To:       booking.Customer.Email,
		Template: models.EmailBookingConfirmation,
		Booking:  booking,
		Trip:     trip,
	})
}

func (n *QueueNotifier) SendBookingCancellation(booking models.Booking, trip models.Trip) error {
	return n.enqueue(models.EmailPayload{
		To:       booking.Customer.Email,
		Template: models.EmailBookingCancellation,
		Booking:  booking,
		Trip:     trip,
	})
}

func (n *QueueNotifier) enqueue(payload models.EmailPayload) error {
	task, err := NewEmailTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build email task: %w", err)
	}
	if _, err := n.client.Enqueue(task, asynq.MaxRetry(5)); err != nil {
		return fmt.Errorf("failed to enqueue email task: %w", err)
	}
	return nil
}
