package mail

import (
	"fmt"

	"clinic-backend/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Mailer sends transactional email over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	log    *logrus.Logger
}

func NewMailer(cfg config.SMTPConfig, log *logrus.Logger) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		log:    log,
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// SendVerificationCode delivers an email verification code. Delivery runs
// in its own goroutine so registration does not block on SMTP.
func (m *Mailer) SendVerificationCode(to, code string) {
	go func() {
		body := fmt.Sprintf(
			"<p>Your verification code is <b>%s</b>.</p><p>It expires in 15 minutes.</p>",
			code,
		)
		if err := m.Send(to, "Verify your email", body); err != nil {
			m.log.WithError(err).WithField("email", to).Warn("Failed to send verification email")
		}
	}()
}

// SendPasswordResetCode delivers a password reset code asynchronously.
func (m *Mailer) SendPasswordResetCode(to, code string) {
	go func() {
		body := fmt.Sprintf(
			"<p>Your password reset code is <b>%s</b>.</p><p>It expires in 15 minutes.</p>",
			code,
		)
		if err := m.Send(to, "Reset your password", body); err != nil {
			m.log.WithError(err).WithField("email", to).Warn("Failed to send password reset email")
		}
	}()
}
