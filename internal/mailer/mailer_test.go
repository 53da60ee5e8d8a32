package mailer

import (
	"errors"
	"net/smtp"
	"testing"

	"property-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedSend struct {
	addr string
	auth smtp.Auth
	from string
	to   []string
	msg  string
}

func newCapturingMailer(cfg Config) (*SMTPMailer, *capturedSend) {
	captured := &capturedSend{}
	m := New(cfg)
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		captured.addr = addr
		captured.auth = a
		captured.from = from
		captured.to = to
		captured.msg = string(msg)
		return nil
	}
	return m, captured
}

func TestSend_BuildsMessage(t *testing.T) {
	m, captured := newCapturingMailer(Config{
		Host: "smtp.test.fr",
		Port: 587,
		From: "no-reply@property-portal.local",
	})

	id := uuid.New()
	err := m.Send(service.EmailEvent{
		Kind:           service.EmailInterventionApproved,
		Recipients:     []string{"jean.dupont@test.fr"},
		InterventionID: id,
		Title:          "Fuite d'eau",
		Fields:         map[string]string{"reason": "urgence"},
	})

	require.NoError(t, err)
	assert.Equal(t, "smtp.test.fr:587", captured.addr)
	assert.Equal(t, "no-reply@property-portal.local", captured.from)
	assert.Equal(t, []string{"jean.dupont@test.fr"}, captured.to)
	assert.Contains(t, captured.msg, "Subject: Intervention approuvée")
	assert.Contains(t, captured.msg, "To: jean.dupont@test.fr")
	assert.Contains(t, captured.msg, "Fuite d'eau")
	assert.Contains(t, captured.msg, id.String())
	assert.Contains(t, captured.msg, "reason: urgence")
	// anonymous relay, no credentials configured
	assert.Nil(t, captured.auth)
}

func TestSend_UnknownKindFallsBack(t *testing.T) {
	m, captured := newCapturingMailer(Config{Host: "smtp.test.fr", Port: 25, From: "from@test.fr"})

	err := m.Send(service.EmailEvent{
		Kind:       "mystere",
		Recipients: []string{"a@test.fr"},
	})

	require.NoError(t, err)
	assert.Contains(t, captured.msg, "Subject: Notification d'intervention")
}

func TestSend_NoRecipients(t *testing.T) {
	m, _ := newCapturingMailer(Config{Host: "smtp.test.fr", Port: 25, From: "from@test.fr"})

	err := m.Send(service.EmailEvent{Kind: service.EmailInterventionCreated})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no recipients")
}

func TestSend_AuthConfigured(t *testing.T) {
	m, captured := newCapturingMailer(Config{
		Host:     "smtp.test.fr",
		Port:     587,
		From:     "from@test.fr",
		Username: "mailer",
		Password: "s3cret",
	})

	err := m.Send(service.EmailEvent{
		Kind:       service.EmailInterventionCreated,
		Recipients: []string{"a@test.fr"},
	})

	require.NoError(t, err)
	assert.NotNil(t, captured.auth)
}

func TestSend_RelayFailure(t *testing.T) {
	m := New(Config{Host: "smtp.test.fr", Port: 25, From: "from@test.fr"})
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		return errors.New("connection refused")
	}

	err := m.Send(service.EmailEvent{
		Kind:       service.EmailInterventionCreated,
		Recipients: []string{"a@test.fr"},
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
