package notify

import (
	"context"
	"time"

	"github.com/cwagoventures/cosmibeautii-backend/model"
	"github.com/cwagoventures/cosmibeautii-backend/thirdparty/rabbitmq"
	"github.com/cwagoventures/cosmibeautii-backend/thirdparty/resend"
	"github.com/cwagoventures/cosmibeautii-backend/utils/logger"
	"go.uber.org/zap"
)

// Notifier dispatches the best-effort confirmation email for an accepted
// order. Implementations never return an error: a lost email must not affect
// the order's success status, so failures end up in the log and nowhere else.
type Notifier interface {
	OrderConfirmed(ctx context.Context, msg *model.OrderConfirmedMessage)
}

type queueNotifier struct {
	publisher *rabbitmq.Publisher
}

// NewQueueNotifier hands confirmation emails to the RabbitMQ queue; the
// consumer performs the actual send.
func NewQueueNotifier(publisher *rabbitmq.Publisher) Notifier {
	return &queueNotifier{publisher: publisher}
}

func (n *queueNotifier) OrderConfirmed(ctx context.Context, msg *model.OrderConfirmedMessage) {
	if err := n.publisher.PublishOrderConfirmed(msg); err != nil {
		logger.Error("[OrderConfirmed] publish email task",
			zap.String("order_number", msg.OrderNumber),
			zap.String("error", err.Error()),
		)
	}
}

type directNotifier struct {
	emails    resend.EmailClient
	recipient string
}

// NewDirectNotifier sends the confirmation email from a detached goroutine,
// used when no broker is configured.
func NewDirectNotifier(emails resend.EmailClient, recipient string) Notifier {
	return &directNotifier{emails: emails, recipient: recipient}
}

func (n *directNotifier) OrderConfirmed(ctx context.Context, msg *model.OrderConfirmedMessage) {
	// Detach from the request context so the response never waits on the send.
	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		subject, html := resend.ConfirmationEmail(msg)
		if err := n.emails.Send(sendCtx, n.recipient, subject, html); err != nil {
			logger.Error("[OrderConfirmed] send confirmation email",
				zap.String("order_number", msg.OrderNumber),
				zap.String("error", err.Error()),
			)
			return
		}
		logger.Info("[OrderConfirmed] confirmation email sent", zap.String("order_number", msg.OrderNumber))
	}()
}
