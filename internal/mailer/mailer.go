package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/sirupsen/logrus"
	gomail "gopkg.in/mail.v2"
)

// Sender abstracts the SMTP dialer so delivery can be swapped in tests
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer delivers messages through an SMTP relay
type SMTPMailer struct {
	From   string
	sender Sender
}

// NewSMTPMailer builds a mailer that authenticates against host:port
func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{From: from, sender: gomail.NewDialer(host, port, username, password)}
}

// NewMailerWithSender builds a mailer on top of an existing sender
func NewMailerWithSender(from string, sender Sender) *SMTPMailer {
	return &SMTPMailer{From: from, sender: sender}
}

// Send delivers an HTML message and reports whether the relay accepted it.
// Errors are logged and not retried.
func (m *SMTPMailer) Send(to, subject, body string) bool {
	message := gomail.NewMessage()
	message.SetHeader("From", m.From)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", body)

	if err := m.sender.DialAndSend(message); err != nil {
		logrus.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
			"error":   err.Error(),
		}).Error("Mail delivery failed")
		return false
	}
	logrus.WithFields(logrus.Fields{"to": to, "subject": subject}).Info("Mail delivered")
	return true
}

// OTPSubject is the subject line of one-time password emails
const OTPSubject = "Your OTP Code"

var otpTemplate = template.Must(template.New("otp").Parse(`<div style="font-family: Arial, sans-serif; padding: 20px;">
  <h2>Your OTP Code</h2>
  <p>Your One-Time Password (OTP) is: <strong>{{.Code}}</strong></p>
  <p>This code will expire in {{.Minutes}} minutes.</p>
  <p>If you didn't request this code, please ignore this email.</p>
</div>
`))

// OTPEmail renders the HTML body carrying code
func OTPEmail(code string, ttl time.Duration) (string, error) {
	var buf bytes.Buffer
	err := otpTemplate.Execute(&buf, struct {
		Code    string
		Minutes int
	}{Code: code, Minutes: int(ttl.Minutes())})
	if err != nil {
		return "", fmt.Errorf("render otp email: %w", err)
	}
	return buf.String(), nil
}
