package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/models"
	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/repository"
	"github.com/Vitalis058/tumaini-next-sub000/internal/infrastructure/config"
	"github.com/Vitalis058/tumaini-next-sub000/internal/infrastructure/mail"
	Logger "github.com/Vitalis058/tumaini-next-sub000/pkg/logger"
)

var (
	bookingOperatorTmpl = template.Must(template.New("booking_operator").Parse(
		`New booking request for {{.Tour.TourName}} ({{.Tour.Location}}, {{.Tour.Date}})

Name:         {{.Request.Name}}
Email:        {{.Request.Email}}
Phone:        {{.Request.Phone}}
Participants: {{.Request.Participants}}
Preferred:    {{if .Request.Date}}{{.Request.Date}}{{else}}tour date{{end}}

{{.Request.Message}}
`))

	bookingCustomerTmpl = template.Must(template.New("booking_customer").Parse(
		`Hello {{.Request.Name}},

Thank you for your interest in {{.Tour.TourName}} on {{.Tour.Date}}.
We have received your request for {{.Request.Participants}} participant(s) and will get back to you shortly.

Tumaini Tours
`))

	contactOperatorTmpl = template.Must(template.New("contact_operator").Parse(
		`Message from {{.Name}} <{{.Email}}>

{{.Message}}
`))
)

// InterfaceNotificationService mails booking and contact inquiries.
type InterfaceNotificationService interface {
	NotifyBooking(ctx context.Context, req *models.BookingRequest) error
	NotifyContact(ctx context.Context, msg *models.ContactMessage) error
}

// NotificationService sends inquiry mail to the operator and an acknowledgement
// to the customer.
type NotificationService struct {
	Mailer   mail.Mailer
	Tours    repository.TourRepository
	Operator string
}

// NewNotificationService creates a notification service.
func NewNotificationService(mailer mail.Mailer, tours repository.TourRepository, cfg *config.Config) InterfaceNotificationService {
	operator := cfg.NotifyEmail
	if operator == "" {
		operator = cfg.MailFrom
	}
	return &NotificationService{
		Mailer:   mailer,
		Tours:    tours,
		Operator: operator,
	}
}

// 1. NotifyBooking returns repository.ErrTourNotFound when the tour does not exist.
// Only a failed operator mail is an error; the customer acknowledgement is
// best effort.
func (s *NotificationService) NotifyBooking(ctx context.Context, req *models.BookingRequest) error {
	tour, err := s.Tours.FindByID(ctx, req.TourID)
	if err != nil {
		return err
	}

	data := struct {
		Tour    *models.Tour
		Request *models.BookingRequest
	}{tour, req}

	body, err := render(bookingOperatorTmpl, data)
	if err != nil {
		return err
	}
	err = s.Mailer.Send(ctx, mail.Message{
		To:      []string{s.Operator},
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("Booking request: %s", tour.TourName),
		Body:    body,
	})
	if err != nil {
		return &UpstreamError{Provider: "mail", Op: "send booking", Err: err}
	}

	body, err = render(bookingCustomerTmpl, data)
	if err != nil {
		return err
	}
	err = s.Mailer.Send(ctx, mail.Message{
		To:      []string{req.Email},
		ReplyTo: s.Operator,
		Subject: fmt.Sprintf("We received your booking request for %s", tour.TourName),
		Body:    body,
	})
	if err != nil {
		Logger.Warning("booking acknowledgement to %s: %v", req.Email, err)
	}
	return nil
}

// 2. NotifyContact
func (s *NotificationService) NotifyContact(ctx context.Context, msg *models.ContactMessage) error {
	body, err := render(contactOperatorTmpl, msg)
	if err != nil {
		return err
	}

	subject := strings.TrimSpace(msg.Subject)
	if subject == "" {
		subject = "Website enquiry"
	}

	err = s.Mailer.Send(ctx, mail.Message{
		To:      []string{s.Operator},
		ReplyTo: msg.Email,
		Subject: "Contact: " + subject,
		Body:    body,
	})
	if err != nil {
		return &UpstreamError{Provider: "mail", Op: "send contact", Err: err}
	}
	return nil
}

func render(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

// IsUpstream reports whether err came from an external provider.
func IsUpstream(err error) bool {
	var upstream *UpstreamError
	return errors.As(err, &upstream)
}
