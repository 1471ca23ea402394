package notification

import (
	"context"
	"deliveryform/shared/constant"

	"github.com/rs/zerolog/log"
)

type logImpl struct{}

// NewLog only writes confirmations to the log. Meant for development.
func NewLog() Notifier {
	return logImpl{}
}

func (logImpl) Driver() string {
	return constant.NotificationDriverLog
}

func (logImpl) SendConfirmation(_ context.Context, confirmation Confirmation) error {
	body, err := RenderBody(confirmation)
	if err != nil {
		return err
	}

	log.Info().
		Str("order", confirmation.OrderNumber).
		Str("to", confirmation.Email).
		Str("deliveryDate", confirmation.DeliveryDate.Format(constant.DateLayout)).
		Str("body", body).
		Msg("confirmation")

	return nil
}
