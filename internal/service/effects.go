package service

import (
	"property-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Audience is a tagged variant addressing a notification either to every
// holder of a set of roles or to an explicit list of users, never both.
type Audience struct {
	kind    models.NotificationAudienceKind
	roles   []models.UserRole
	userIDs []uuid.UUID
}

// AudienceRoles addresses every team member holding one of the given roles
func AudienceRoles(roles ...models.UserRole) Audience {
	return Audience{kind: models.AudienceByRole, roles: roles}
}

// AudienceUsers addresses an explicit list of users
func AudienceUsers(ids ...uuid.UUID) Audience {
	return Audience{kind: models.AudienceByUser, userIDs: ids}
}

// Kind returns the audience variant tag
func (a Audience) Kind() models.NotificationAudienceKind {
	return a.kind
}

// Roles returns the role list; empty unless Kind is AudienceByRole
func (a Audience) Roles() []models.UserRole {
	return a.roles
}

// UserIDs returns the user list; empty unless Kind is AudienceByUser
func (a Audience) UserIDs() []uuid.UUID {
	return a.userIDs
}

// Dispatcher runs best-effort side effects. A failure is logged and swallowed:
// the state transition that preceded the side effect already committed and
// must not be undone by a flaky notification channel.
type Dispatcher struct {
	log *logrus.Entry
}

// NewDispatcher creates a dispatcher logging through the standard logger
func NewDispatcher() *Dispatcher {
	return &Dispatcher{log: logrus.NewEntry(logrus.StandardLogger())}
}

// Go executes the side effect and funnels any failure into the log sink.
// It never returns the error to the caller.
func (d *Dispatcher) Go(op string, fn func() error) {
	if fn == nil {
		return
	}
	if err := fn(); err != nil {
		d.log.WithField("side_effect", op).WithError(err).Warn("side effect failed")
	}
}
