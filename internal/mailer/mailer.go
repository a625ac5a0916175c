package mailer

import "fmt"

// Service sends transactional mail. SendOTP is the only message the core
// dispatches; Send is the raw primitive the implementations share.
type Service interface {
	Send(toEmail, toName, subject, text, html string) (string, error)
	SendOTP(email, code string) error
}

func otpSubject() string {
	return "Your Café Menu Admin OTP"
}

func otpText(code string) string {
	return fmt.Sprintf("Your OTP for admin login is %s. It is valid for 10 minutes.", code)
}

func otpHTML(code string) string {
	return fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
		<h2 style="color: #6B4423;">Café Menu Admin Login</h2>
		<p>Your OTP for admin login is:</p>
		<div style="background: #F5E6D3; padding: 20px; text-align: center; border-radius: 8px; margin: 20px 0;">
			<h1 style="color: #6B4423; font-size: 36px; margin: 0; letter-spacing: 8px;">%s</h1>
		</div>
		<p>This OTP is valid for 10 minutes.</p>
		<p style="color: #888; font-size: 14px;">If you didn't request this OTP, please ignore this email.</p>
	</div>`, code)
}
