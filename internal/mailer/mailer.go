// Package mailer sends templated workflow emails over SMTP.
package mailer

import (
	"fmt"
	"net/smtp"
	"sort"
	"strings"

	"property-portal-backend/internal/service"

	"github.com/sirupsen/logrus"
)

// Config holds SMTP connection settings
type Config struct {
	Host     string
	Port     int
	From     string
	Username string
	Password string
}

// SMTPMailer sends workflow emails through a plain SMTP relay
type SMTPMailer struct {
	cfg  Config
	log  *logrus.Entry
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// New creates an SMTP mailer
func New(cfg Config) *SMTPMailer {
	return &SMTPMailer{
		cfg:  cfg,
		log:  logrus.WithField("component", "mailer"),
		send: smtp.SendMail,
	}
}

var subjects = map[service.EmailKind]string{
	service.EmailInterventionCreated:   "Intervention créée",
	service.EmailInterventionApproved:  "Intervention approuvée",
	service.EmailInterventionRejected:  "Intervention refusée",
	service.EmailInterventionScheduled: "Intervention planifiée",
	service.EmailInterventionCompleted: "Travaux terminés",
	service.EmailQuoteRequested:        "Demande de devis",
}

// Send delivers one workflow email. Recipients are required; an unknown kind
// falls back to a generic subject.
func (m *SMTPMailer) Send(event service.EmailEvent) error {
	if len(event.Recipients) == 0 {
		return fmt.Errorf("email %s has no recipients", event.Kind)
	}

	subject, ok := subjects[event.Kind]
	if !ok {
		subject = "Notification d'intervention"
	}

	var body strings.Builder
	fmt.Fprintf(&body, "%s\r\n\r\nIntervention: %s (%s)\r\n", subject, event.Title, event.InterventionID)
	keys := make([]string, 0, len(event.Fields))
	for k := range event.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&body, "%s: %s\r\n", k, event.Fields[k])
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		m.cfg.From, strings.Join(event.Recipients, ", "), subject, body.String())

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	if err := m.send(addr, auth, m.cfg.From, event.Recipients, []byte(msg)); err != nil {
		return fmt.Errorf("send email %s: %w", event.Kind, err)
	}
	m.log.WithFields(logrus.Fields{
		"kind":       event.Kind,
		"recipients": len(event.Recipients),
	}).Debug("Email sent")
	return nil
}
