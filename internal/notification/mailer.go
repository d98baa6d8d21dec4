package notification

import (
	"context"
	"fmt"

	mail "github.com/go-mail/mail/v2"
	"github.com/shotfolio/shotfolio-api/internal/models"
)

// SMTPConfig holds the settings for the admin email channel.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	AdminTo  string
}

// SMTPNotifier emails the admin about action-required notifications. It is a
// secondary channel; the inbox record is the source of truth.
type SMTPNotifier struct {
	cfg    SMTPConfig
	dialer *mail.Dialer
}

// NewSMTPNotifier builds the email channel, or nil when SMTP is not
// configured so the service skips it.
func NewSMTPNotifier(cfg SMTPConfig) *SMTPNotifier {
	if cfg.Host == "" || cfg.From == "" || cfg.AdminTo == "" {
		return nil
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	dialer := mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	dialer.StartTLSPolicy = mail.OpportunisticStartTLS
	return &SMTPNotifier{cfg: cfg, dialer: dialer}
}

// Channel names this notifier in delivery-failure logs.
func (n *SMTPNotifier) Channel() string {
	return "smtp"
}

// Deliver sends an email for admin-targeted, action-required notifications
// and ignores everything else.
func (n *SMTPNotifier) Deliver(_ context.Context, notification models.Notification) error {
	if notification.Target != models.TargetAdmin || !notification.ActionRequired {
		return nil
	}

	m := mail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", n.cfg.AdminTo)
	m.SetHeader("Subject", fmt.Sprintf("[shotfolio] %s", notification.Title))
	m.SetBody("text/plain", notification.Message)

	return n.dialer.DialAndSend(m)
}
