// Package notification dispatches booking confirmations to customers.
package notification

//go:generate go run go.uber.org/mock/mockgen -source=./notification.go -destination=./mocks/notification_mock.go -package=mocks

import (
	"bytes"
	"context"
	"deliveryform/config"
	"deliveryform/infras/kafka"
	"deliveryform/infras/otel"
	"deliveryform/shared/constant"
	"fmt"
	"text/template"
	"time"

	"github.com/rs/zerolog/log"
)

// Confirmation is what a customer is told about an accepted booking.
type Confirmation struct {
	OrderNumber  string    `json:"orderNumber"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	DeliveryDate time.Time `json:"-"`
	Date         string    `json:"deliveryDate"`
	Address      string    `json:"deliveryAddress"`
	Contactless  bool      `json:"contactlessDelivery"`
}

type Notifier interface {
	SendConfirmation(ctx context.Context, confirmation Confirmation) error
	Driver() string
}

var bodyTemplate = template.Must(template.New("confirmation").Parse(`Hi {{.Name}},

Your delivery for order {{.OrderNumber}} is scheduled for {{.DeliveryDate.Format "Monday, January 2, 2006"}}.
{{- if .Address}}

Delivery address: {{.Address}}
{{- end}}
{{- if .Contactless}}

The driver will leave your order at the door.
{{- end}}

Reply to this email if anything needs to change.
`))

// RenderBody fills the plain text confirmation email.
func RenderBody(confirmation Confirmation) (string, error) {
	var buf bytes.Buffer

	if err := bodyTemplate.Execute(&buf, confirmation); err != nil {
		return "", fmt.Errorf("failed to render confirmation: %w", err)
	}

	return buf.String(), nil
}

// New picks the dispatcher configured by NOTIFICATION_DRIVER.
func New(cfg *config.Config, otel otel.Otel) Notifier {
	switch cfg.Notification.Driver {
	case constant.NotificationDriverKafka:
		return NewKafka(kafka.New(cfg), otel)
	case constant.NotificationDriverLog:
		return NewLog()
	case constant.NotificationDriverSMTP:
		if cfg.Notification.SMTP.Host == "" {
			log.Warn().Msg("SMTP host not configured, confirmations are only logged")

			return NewLog()
		}

		return NewSMTP(cfg, otel)
	default:
		log.Warn().Str("driver", cfg.Notification.Driver).Msg("Unknown notification driver, confirmations are only logged")

		return NewLog()
	}
}
