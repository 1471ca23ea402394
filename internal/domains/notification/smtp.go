package notification

import (
	"context"
	"deliveryform/config"
	"deliveryform/infras/otel"
	"deliveryform/shared/constant"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/wneessen/go-mail"
)

type smtpImpl struct {
	client  *mail.Client
	from    string
	subject string
	otel    otel.Otel
}

func NewSMTP(cfg *config.Config, otel otel.Otel) Notifier {
	smtp := cfg.Notification.SMTP

	options := []mail.Option{
		mail.WithPort(smtp.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}

	if smtp.Username != "" {
		options = append(options,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(smtp.Username),
			mail.WithPassword(smtp.Password),
		)
	}

	client, err := mail.NewClient(smtp.Host, options...)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create SMTP client")
	}

	log.Info().Str("host", smtp.Host).Int("port", smtp.Port).Msg("SMTP notifier initialized")

	return &smtpImpl{
		client:  client,
		from:    smtp.From,
		subject: smtp.Subject,
		otel:    otel,
	}
}

func (s *smtpImpl) Driver() string {
	return constant.NotificationDriverSMTP
}

func (s *smtpImpl) SendConfirmation(ctx context.Context, confirmation Confirmation) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".smtp.SendConfirmation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	body, err := RenderBody(confirmation)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()

	if err = msg.From(s.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}

	if err = msg.AddToFormat(confirmation.Name, confirmation.Email); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}

	msg.Subject(s.subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err = s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	log.Info().Str("order", confirmation.OrderNumber).Msg("confirmation email sent")

	return nil
}
