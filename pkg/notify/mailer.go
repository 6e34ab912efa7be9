package notify

import (
	"fmt"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"github.com/tikket/tikket-server/pkg/config"
)

// Mailer renders and sends confirmation emails over SMTP.
type Mailer struct {
	from   string
	logger *zap.Logger

	send func(...*gomail.Message) error
}

func NewMailer(cfg *config.MailConfig, logger *zap.Logger) *Mailer {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password)
	return &Mailer{
		from:   cfg.From,
		logger: logger,
		send:   dialer.DialAndSend,
	}
}

// SendRegistrationConfirmation sends the confirmation email for one
// registration.
func (m *Mailer) SendRegistrationConfirmation(msg *RegistrationConfirmation) error {
	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", msg.Email)
	mail.SetHeader("Subject", fmt.Sprintf("You're registered: %s", msg.EventTitle))
	mail.SetBody("text/plain", confirmationBody(msg))

	if err := m.send(mail); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	m.logger.Info("confirmation email sent",
		zap.String("email", msg.Email),
		zap.String("event_id", msg.EventID))
	return nil
}

func confirmationBody(msg *RegistrationConfirmation) string {
	name := msg.Name
	if name == "" {
		name = "there"
	}
	location := msg.EventLocation
	if location == "" {
		location = "TBA"
	}
	return fmt.Sprintf(`Hi %s,

Your registration for %q is confirmed.

When: %s - %s
Where: %s

See you there!
The Tikket Team
`,
		name,
		msg.EventTitle,
		msg.StartDate.Format("Mon, 2 Jan 2006"),
		msg.EndDate.Format("Mon, 2 Jan 2006"),
		location,
	)
}
