package contact

import (
	"fmt"
	"net/mail"

	"github.com/brightacademy/backend/core"
)

// Message is the contact form payload.
type Message struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

func (m *Message) Validate() error {
	m.Name = core.CleanString(m.Name)
	m.Email = core.CleanString(m.Email, true)
	m.Subject = core.CleanString(m.Subject)
	m.Message = core.CleanString(m.Message)
	return core.Validate.Struct(m)
}

// Service forwards contact form submissions to the site's contact address.
type Service struct {
	mailSvc core.EmailService
	to      mail.Address
}

func NewService(mailSvc core.EmailService, to mail.Address) *Service {
	return &Service{mailSvc: mailSvc, to: to}
}

func (svc *Service) Send(msg Message) {
	subject := msg.Subject
	if subject == "" {
		subject = "New contact form submission"
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{svc.to},
		ReplyTo: &mail.Address{Name: msg.Name, Address: msg.Email},
		Subject: subject,
		Body:    fmt.Sprintf("%s\r\n\r\n-- \r\n%s <%s>", msg.Message, msg.Name, msg.Email),
	})
}
