package mailer

import (
	"os"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

//go:generate mockgen -source=mailer.go -destination=mock/mailer_mock.go -package=mock
type Mailer interface {
	Send(to []string, subject, body string) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

func NewSMTPMailer(logger ...*zap.Logger) Mailer {
	l := zap.L().Named("mailer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = os.Getenv("SMTP_USER")
	}

	return &smtpMailer{
		dialer: gomail.NewDialer(
			os.Getenv("SMTP_HOST"),
			port,
			os.Getenv("SMTP_USER"),
			os.Getenv("SMTP_PASS"),
		),
		from:   from,
		logger: l,
	}
}

func (m *smtpMailer) Send(to []string, subject, body string) error {
	if len(to) == 0 {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Error("send mail failed",
			zap.Int("recipients", len(to)),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return err
	}
	return nil
}
