package mail

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Vitalis058/tumaini-next-sub000/internal/infrastructure/config"
	Logger "github.com/Vitalis058/tumaini-next-sub000/pkg/logger"

	gomail "github.com/wneessen/go-mail"
)

// Message is a plain-text email.
type Message struct {
	To      []string
	ReplyTo string
	Subject string
	Body    string
}

// Mailer delivers transactional email.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// NewMailer returns an SMTP mailer, or a log-only mailer when SMTP_HOST is empty.
func NewMailer(cfg *config.Config) Mailer {
	if cfg.SMTPHost == "" {
		Logger.Warning("SMTP_HOST not set, outgoing mail will only be logged")
		return &LogMailer{From: cfg.MailFrom}
	}
	return &SMTPMailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	}
}

// SMTPMailer sends through an authenticated SMTP relay. Port 465 uses
// implicit TLS, any other port upgrades with STARTTLS when offered.
type SMTPMailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("mail %q has no recipients", msg.Subject)
	}

	out, err := m.newMsg(msg)
	if err != nil {
		return fmt.Errorf("build mail %q: %w", msg.Subject, err)
	}

	client, err := gomail.NewClient(m.Host, m.clientOptions()...)
	if err != nil {
		return fmt.Errorf("smtp client %s: %w", m.Host, err)
	}
	if err := client.DialAndSendWithContext(ctx, out); err != nil {
		return fmt.Errorf("send mail %q: %w", msg.Subject, err)
	}
	return nil
}

func (m *SMTPMailer) clientOptions() []gomail.Option {
	opts := []gomail.Option{
		gomail.WithPort(m.Port),
		gomail.WithTimeout(30 * time.Second),
	}
	if m.Port == 465 {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}
	if m.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(m.Username),
			gomail.WithPassword(m.Password),
		)
	}
	return opts
}

// newMsg builds the MIME message. Header values are RFC 2047 encoded by
// go-mail; line breaks in user input are flattened first.
func (m *SMTPMailer) newMsg(msg Message) (*gomail.Msg, error) {
	out := gomail.NewMsg()
	if err := out.From(m.From); err != nil {
		return nil, fmt.Errorf("from %q: %w", m.From, err)
	}
	if err := out.To(msg.To...); err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := out.ReplyTo(sanitizeHeader(msg.ReplyTo)); err != nil {
			Logger.Warning("dropping invalid reply-to %q: %v", msg.ReplyTo, err)
		}
	}
	out.Subject(sanitizeHeader(msg.Subject))
	out.SetDate()
	out.SetBodyString(gomail.TypeTextPlain, msg.Body)
	return out, nil
}

// LogMailer writes messages to the log instead of sending them.
type LogMailer struct {
	From string
}

func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	Logger.Info("mail (not sent) from=%s to=%s subject=%q", m.From, strings.Join(msg.To, ","), msg.Subject)
	return nil
}

// sanitizeHeader stops header injection through user supplied values.
func sanitizeHeader(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
