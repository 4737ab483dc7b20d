package mail

import (
	"context"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/karizma-conseil/helpdesk-agent/internal/config"
	"github.com/karizma-conseil/helpdesk-agent/internal/domain"
	apperrors "github.com/karizma-conseil/helpdesk-agent/pkg/util/errorutil"
)

// Mailer is the outbound transport: a pure side-effecting send. Transport
// failures surface to the caller; they are never retried automatically.
type Mailer interface {
	Send(ctx context.Context, email domain.Email) error
}

// SMTPMailer sends through a configured SMTP relay.
type SMTPMailer struct {
	cfg    config.MailConfig
	logger *zap.Logger
}

// NewSMTPMailer constructs the SMTP transport.
func NewSMTPMailer(cfg config.MailConfig, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, logger: logger}
}

// Send delivers the email over SMTP.
func (m *SMTPMailer) Send(ctx context.Context, email domain.Email) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return apperrors.NewUpstreamError("invalid sender address", err)
	}
	if err := msg.To(email.To); err != nil {
		return apperrors.NewUpstreamError("invalid recipient address", err)
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, email.Body)

	client, err := gomail.NewClient(m.cfg.Host,
		gomail.WithPort(m.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.Username),
		gomail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		return apperrors.NewUpstreamError("smtp client setup failed", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		m.logger.Error("email send failed",
			zap.String("to", email.To),
			zap.Int("ticket_id", email.TicketID),
			zap.Error(err))
		return apperrors.NewUpstreamError("email send failed", err)
	}

	m.logger.Info("email sent",
		zap.String("to", email.To),
		zap.Int("ticket_id", email.TicketID))
	return nil
}

// LogMailer records the send instead of performing it; used when SMTP is not
// configured.
type LogMailer struct {
	logger *zap.Logger
}

// NewLogMailer constructs the log-only transport.
func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// Send logs the message that would have gone out.
func (m *LogMailer) Send(_ context.Context, email domain.Email) error {
	m.logger.Info("email would be sent",
		zap.String("to", email.To),
		zap.String("subject", email.Subject),
		zap.Int("ticket_id", email.TicketID))
	return nil
}

// ForConfig picks the SMTP transport when configured, the log-only one otherwise.
func ForConfig(cfg config.MailConfig, logger *zap.Logger) Mailer {
	if cfg.Configured() {
		return NewSMTPMailer(cfg, logger)
	}
	return NewLogMailer(logger)
}
