package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"log/slog"
	"text/template"

	"wanderlust-booking/internal/infra"
	"wanderlust-booking/internal/infra/observability"
	"wanderlust-booking/internal/pkg/config"
	"wanderlust-booking/internal/usecase/shared"

	gomail "gopkg.in/gomail.v2"
)

const confirmationSubject = "Your booking is confirmed"

var confirmationBody = template.Must(template.New("confirmation").Parse(
	`Hi {{.GuestName}},

Your booking is confirmed.

Confirmation number: {{.ConfirmationNumber}}
Booking: {{.ItemName}}
{{- if .CheckIn}}
Dates: {{.CheckIn}} to {{.CheckOut}}
{{- end}}
Guests: {{.GuestCount}}
Total paid: {{.Total}}

Keep this number handy when you contact us about your trip.
`))

// Sender is satisfied by *gomail.Dialer.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

func NewDialer(cfg config.MailConfig) *gomail.Dialer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{
		InsecureSkipVerify: false,
		ServerName:         cfg.Host,
	}
	return d
}

func BuildMessage(from string, notice shared.ConfirmationNotice) (*gomail.Message, error) {
	var body bytes.Buffer
	if err := confirmationBody.Execute(&body, notice); err != nil {
		return nil, err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", notice.To)
	m.SetHeader("Subject", confirmationSubject+" ("+notice.ConfirmationNumber+")")
	m.SetBody("text/plain", body.String())
	return m, nil
}

type SMTPNotifier struct {
	sender  Sender
	from    string
	logger  *slog.Logger
	metrics *observability.Metrics
}

func NewSMTPNotifier(sender Sender, from string, logger *slog.Logger, metrics *observability.Metrics) *SMTPNotifier {
	return &SMTPNotifier{sender: sender, from: from, logger: logger, metrics: metrics}
}

func (n *SMTPNotifier) NotifyConfirmed(ctx context.Context, notice shared.ConfirmationNotice) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m, err := BuildMessage(n.from, notice)
	if err != nil {
		return infra.WrapStoreErr(n.logger, infra.KindMailFailure, "failed to render confirmation email", err)
	}

	err = n.sender.DialAndSend(m)
	n.metrics.ObserveNotification("smtp", err)
	if err != nil {
		return infra.WrapStoreErr(n.logger, infra.KindMailFailure, "failed to send confirmation email", err)
	}

	n.logger.Info("Confirmation email sent",
		slog.String("confirmation_number", notice.ConfirmationNumber),
	)
	return nil
}

// LogNotifier stands in for SMTP when mail is disabled.
type LogNotifier struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

func NewLogNotifier(logger *slog.Logger, metrics *observability.Metrics) *LogNotifier {
	return &LogNotifier{logger: logger, metrics: metrics}
}

func (n *LogNotifier) NotifyConfirmed(_ context.Context, notice shared.ConfirmationNotice) error {
	var body bytes.Buffer
	if err := confirmationBody.Execute(&body, notice); err != nil {
		return err
	}
	n.logger.Info("Confirmation email (mail disabled)",
		slog.String("confirmation_number", notice.ConfirmationNumber),
		slog.String("body", body.String()),
	)
	n.metrics.ObserveNotification("log", nil)
	return nil
}
