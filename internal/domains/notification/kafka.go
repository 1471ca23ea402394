package notification

import (
	"context"
	"deliveryform/infras/kafka"
	"deliveryform/infras/otel"
	"deliveryform/shared/constant"
	"fmt"
)

type kafkaImpl struct {
	publisher kafka.Publisher
	otel      otel.Otel
}

// NewKafka hands confirmations to an external mailer through a topic,
// keyed by order number.
func NewKafka(publisher kafka.Publisher, otel otel.Otel) Notifier {
	return &kafkaImpl{
		publisher: publisher,
		otel:      otel,
	}
}

func (k *kafkaImpl) Driver() string {
	return constant.NotificationDriverKafka
}

func (k *kafkaImpl) SendConfirmation(ctx context.Context, confirmation Confirmation) (err error) {
	ctx, scope := k.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".kafka.SendConfirmation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	confirmation.Date = confirmation.DeliveryDate.Format(constant.DateLayout)

	err = k.publisher.SendMessages(ctx, kafka.Message{
		Key:   confirmation.OrderNumber,
		Value: confirmation,
	})
	if err != nil {
		return fmt.Errorf("failed to publish confirmation: %w", err)
	}

	return nil
}
