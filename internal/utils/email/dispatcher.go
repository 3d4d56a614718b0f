package email

import (
	"context"

	"github.com/scorp5438/articles-app/internal/logger"
)

type message struct {
	recipient    string
	displayName  string
	subject      string
	templateName string
	link         string
}

// Dispatcher decouples request handling from mail-server latency: Enqueue
// only guarantees the message was queued, delivery happens on a background
// worker. Delivery failures are logged and never fail the triggering request.
type Dispatcher struct {
	sender Sender
	queue  chan message
}

func NewDispatcher(sender Sender, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Dispatcher{
		sender: sender,
		queue:  make(chan message, queueSize),
	}
}

// Start launches the delivery worker. It drains until ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case msg := <-d.queue:
				if err := d.sender.Send(msg.recipient, msg.displayName, msg.subject, msg.templateName, msg.link); err != nil {
					logger.Log.Error("email delivery failed",
						"recipient", msg.recipient,
						"template", msg.templateName,
						"error", err)
				}
			case <-ctx.Done():
				logger.Log.Info("email dispatcher shutting down")
				return
			}
		}
	}()
}

// Send queues the message. A full queue drops the message with a log line
// instead of stalling the caller.
func (d *Dispatcher) Send(recipientEmail, displayName, subject, templateName, link string) error {
	msg := message{recipientEmail, displayName, subject, templateName, link}
	select {
	case d.queue <- msg:
	default:
		logger.Log.Error("email queue is full, dropping message", "recipient", recipientEmail, "template", templateName)
	}
	return nil
}
