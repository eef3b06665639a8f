package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/finhaus/home_finance_app/internal/platform/config"
	"github.com/jordan-wright/email"
)

// Mailer sends operational alerts over SMTP. A nil Mailer is valid and
// drops every message, so callers never need to branch on configuration.
type Mailer struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New returns a Mailer, or nil when SMTP or the recipient is not configured.
func New(cfg *config.Config, logger *slog.Logger) *Mailer {
	if cfg.SMTPHost == "" || cfg.NotifyEmail == "" {
		logger.Info("SMTP not configured, alert mail disabled")
		return nil
	}
	return &Mailer{cfg: cfg, logger: logger}
}

// Notify sends a plain-text alert to the configured recipient.
func (m *Mailer) Notify(ctx context.Context, subject, body string) error {
	if m == nil {
		return nil
	}

	e := email.NewEmail()
	e.From = m.cfg.SMTPFrom
	e.To = []string{m.cfg.NotifyEmail}
	e.Subject = subject
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", m.cfg.SMTPHost, m.cfg.SMTPPort)
	var auth smtp.Auth
	if m.cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPassword, m.cfg.SMTPHost)
	}
	if err := e.Send(addr, auth); err != nil {
		m.logger.Error("Failed to send alert mail", slog.String("subject", subject), slog.String("error", err.Error()))
		return fmt.Errorf("failed to send alert mail: %w", err)
	}

	m.logger.Info("Alert mail sent", slog.String("subject", subject), slog.String("to", m.cfg.NotifyEmail))
	return nil
}
