package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"lcm-booking/pkg/utils"

	"go.uber.org/zap"
)

// Mailer sends booking confirmations over SMTP. It implements the usecase
// Notifier port: outcomes are reported as (sent, message), never as errors,
// so a broken mail setup cannot fail a committed booking.
type Mailer struct {
	config utils.EmailConfig
	log    *zap.Logger
}

func NewMailer(config utils.EmailConfig, log *zap.Logger) *Mailer {
	return &Mailer{
		config: config,
		log:    log.With(zap.String("notifier", "mailer")),
	}
}

func (m *Mailer) Notify(ctx context.Context, subject, body string, recipients []string) (bool, string) {
	if m.config.Host == "" || m.config.User == "" || m.config.Password == "" {
		return false, "smtp not configured"
	}

	var to []string
	for _, addr := range recipients {
		if strings.TrimSpace(addr) != "" {
			to = append(to, addr)
		}
	}
	if len(to) == 0 {
		return false, "no recipients"
	}

	if err := ctx.Err(); err != nil {
		return false, "context cancelled"
	}

	from := m.config.From
	if from == "" {
		from = m.config.User
	}

	msg := strings.Builder{}
	msg.WriteString("From: " + from + "\r\n")
	msg.WriteString("To: " + strings.Join(to, ", ") + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)
	auth := smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)

	// smtp.SendMail upgrades to TLS via STARTTLS when the server offers it.
	if err := smtp.SendMail(addr, auth, from, to, []byte(msg.String())); err != nil {
		m.log.Error("Failed to send email",
			zap.Error(err),
			zap.String("subject", subject),
			zap.Int("recipients", len(to)),
		)
		return false, err.Error()
	}

	return true, "sent"
}
