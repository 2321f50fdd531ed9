package mail

import (
	"bytes"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"

	"github.com/hctseng/formcraft-go/config"
)

// Sender delivers one message to one recipient. Implementations are
// best-effort; the caller owns retry and logging policy.
type Sender interface {
	Send(to, subject, body string) error
}

type SMTPSender struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func NewSMTPSender() *SMTPSender {
	return &SMTPSender{
		Host:     config.SmtpHost,
		Port:     config.SmtpPort,
		Username: config.SmtpUsername,
		Password: config.SmtpPassword,
		From:     config.FromEmail,
	}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	auth := sasl.NewLoginClient(s.Username, s.Password)

	message := "From: " + s.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n\r\n" +
		body

	reader := bytes.NewReader([]byte(message))
	return smtp.SendMail(s.Host+":"+s.Port, auth, s.From, []string{to}, reader)
}
