package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/nexus-prive/internal/infra/queue"
)

//go:embed templates/*.html
var templates embed.FS

var notificationTmpl = template.Must(template.ParseFS(templates, "templates/mandate_notification.html"))

// Dialer is satisfied by *gomail.Dialer.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

func NewEmailSender(host string, port int, user, password, from, deskTo string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		DeskTo:   deskTo,
		dialer:   gomail.NewDialer(host, port, user, password),
	}
}

// WithDialer swaps the SMTP transport.
func (s *EmailSender) WithDialer(d Dialer) *EmailSender {
	s.dialer = d
	return s
}

// NotifyDesk e-mails the advisory desk about a captured mandate or a
// stage change.
func (s *EmailSender) NotifyDesk(ctx context.Context, event queue.MandateEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	subject, body, err := RenderMandateNotification(event)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.DeskTo)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send desk notification: %w", err)
	}
	return nil
}

// RenderMandateNotification returns the subject and HTML body for event.
func RenderMandateNotification(event queue.MandateEvent) (string, string, error) {
	data := MandateNotificationData{
		LeadID:           event.LeadID,
		ClientName:       event.ClientName,
		Residency:        string(event.Residency),
		Status:           string(event.Status),
		PreviousStatus:   string(event.PreviousStatus),
		ChangedBy:        string(event.ChangedBy),
		EstimatedValue:   formatUSD(event.EstimatedValue),
		PropertyInterest: event.PropertyInterest,
		OccurredAt:       event.OccurredAt.UTC().Format(time.RFC1123),
	}

	var subject string
	switch event.Type {
	case queue.EventStatusChanged:
		subject = fmt.Sprintf("Mandate update: %s moved to %s", event.ClientName, event.Status)
		data.Headline = fmt.Sprintf("%s has moved from %s to %s.", event.ClientName, event.PreviousStatus, event.Status)
	default:
		subject = fmt.Sprintf("New mandate: %s", event.ClientName)
		data.Headline = fmt.Sprintf("A new mandate from %s has been registered in the vault.", event.ClientName)
	}

	var body bytes.Buffer
	if err := notificationTmpl.Execute(&body, data); err != nil {
		return "", "", fmt.Errorf("render desk notification: %w", err)
	}
	return subject, body.String(), nil
}

func formatUSD(v int64) string {
	s := fmt.Sprintf("%d", v)
	var out []byte
	for i := range len(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	return "$" + string(out)
}
