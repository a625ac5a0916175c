package mailer

import (
	"github.com/cafedelight/menu-backend/internal/logger"
)

// DevMailer logs messages instead of sending them, so the server can run
// without a mail provider.
type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (d *DevMailer) Send(toEmail, toName, subject, text, html string) (string, error) {
	logger.Info("[DEV MAIL]",
		"to", toEmail,
		"subject", subject,
		"text", text,
	)
	return "dev", nil
}

func (d *DevMailer) SendOTP(email, code string) error {
	logger.Info("[DEV MAIL] admin OTP",
		"to", email,
		"code", code,
	)
	return nil
}
