package mailer

import (
	"fmt"
	"net/smtp"

	"go.uber.org/zap"
)

// Mailer abstracts the transactional email provider. Constructed once in
// main and injected into the services that send mail.
type Mailer interface {
	Send(to, subject, body string) error
}

type SMTPMailer struct {
	Addr string // host:port
	From string
	Auth smtp.Auth
}

func NewSMTP(host string, port int, from, username, password string) *SMTPMailer {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPMailer{
		Addr: fmt.Sprintf("%s:%d", host, port),
		From: from,
		Auth: auth,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.From, to, subject, body)
	return smtp.SendMail(m.Addr, m.Auth, m.From, []string{to}, []byte(msg))
}

// LogMailer is the dev/test implementation: logs instead of sending.
type LogMailer struct {
	Log *zap.Logger
}

func NewLog(log *zap.Logger) *LogMailer { return &LogMailer{Log: log} }

func (m *LogMailer) Send(to, subject, body string) error {
	m.Log.Info("mail (not sent, dev mode)",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}
