package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"carrental-backend/internal/logger"
)

const sendGridHost = "https://api.sendgrid.com"

// EmailMessage is one rendered email ready for delivery.
type EmailMessage struct {
	To        string
	ToName    string
	Subject   string
	PlainText string
	HTML      string
	Template  string // metrics label
}

// EmailSender delivers a rendered message through some backend.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

type sendGridSender struct {
	apiKey    string
	host      string
	fromEmail string
	fromName  string
}

func NewSendGridSender(apiKey, fromEmail, fromName string) EmailSender {
	return &sendGridSender{
		apiKey:    apiKey,
		host:      sendGridHost,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridSender) Send(ctx context.Context, msg EmailMessage) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.PlainText, msg.HTML)

	request := sendgrid.GetRequest(s.apiKey, "/v3/mail/send", s.host)
	request.Method = "POST"
	request.Body = mail.GetRequestBody(message)

	logger.ExternalServiceCall("sendgrid", "mail.send", "template", msg.Template)
	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "mail.send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "mail.send", err)
		return err
	}
	logger.ExternalServiceResult("sendgrid", "mail.send", nil, "status", response.StatusCode)
	return nil
}

// logSender writes emails to the log instead of delivering them.
type logSender struct{}

func NewLogSender() EmailSender {
	return logSender{}
}

func (logSender) Send(ctx context.Context, msg EmailMessage) error {
	logger.InfoContext(ctx, "Email (not delivered)", "to", msg.To, "subject", msg.Subject, "template", msg.Template)
	logger.Debug("Email body", "to", msg.To, "body", msg.PlainText)
	return nil
}
