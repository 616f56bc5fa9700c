package mail

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/xavierca1/nexus-prive/internal/entity"
	"github.com/xavierca1/nexus-prive/internal/infra/queue"
)

type recordingDialer struct {
	sent []*gomail.Message
	err  error
}

func (r *recordingDialer) DialAndSend(m ...*gomail.Message) error {
	r.sent = append(r.sent, m...)
	return r.err
}

func lead() entity.Lead {
	return entity.FixtureLeads(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))[1]
}

func TestRenderCapturedNotification(t *testing.T) {
	subject, body, err := RenderMandateNotification(queue.CapturedEvent(lead()))
	require.NoError(t, err)

	assert.Equal(t, "New mandate: Sarah Chen", subject)
	assert.Contains(t, body, "A new mandate from Sarah Chen")
	assert.Contains(t, body, "Foreign National")
	assert.Contains(t, body, "$32,000,000")
	assert.NotContains(t, body, "Previous stage")
}

func TestRenderStatusChangedNotification(t *testing.T) {
	l := lead()
	l.Status = entity.UnderContract
	ev := queue.StatusChangedEvent(l, entity.Negotiation, entity.Principal, time.Now())

	subject, body, err := RenderMandateNotification(ev)
	require.NoError(t, err)

	assert.Equal(t, "Mandate update: Sarah Chen moved to Under Contract", subject)
	assert.Contains(t, body, "Previous stage")
	assert.Contains(t, body, "Principal")
}

func TestNotifyDeskSendsOneMessage(t *testing.T) {
	d := &recordingDialer{}
	s := NewEmailSender("smtp.local", 587, "u", "p", "vault@nexusprive.com", "desk@nexusprive.com").WithDialer(d)

	require.NoError(t, s.NotifyDesk(context.Background(), queue.CapturedEvent(lead())))
	require.Len(t, d.sent, 1)
	assert.Equal(t, []string{"desk@nexusprive.com"}, d.sent[0].GetHeader("To"))
	assert.Equal(t, []string{"vault@nexusprive.com"}, d.sent[0].GetHeader("From"))
}

func TestNotifyDeskWrapsTransportError(t *testing.T) {
	boom := errors.New("connection refused")
	s := NewEmailSender("smtp.local", 587, "", "", "a@b", "c@d").WithDialer(&recordingDialer{err: boom})

	assert.ErrorIs(t, s.NotifyDesk(context.Background(), queue.CapturedEvent(lead())), boom)
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$5,000,000", formatUSD(5_000_000))
	assert.Equal(t, "$2,050", formatUSD(2050))
	assert.Equal(t, "$999", formatUSD(999))
}
