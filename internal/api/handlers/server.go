// Package handlers implements the HTTP API surface.
//
// Handlers validate and translate; domain logic stays in the alert and
// notify packages. Errors flow through c.Error into the centralized
// error-handler middleware.
package handlers

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"tora-app.io/tora/ent"
	"tora-app.io/tora/internal/alert"
	"tora-app.io/tora/internal/notify"
)

// alertService is the orchestrator surface the handlers call.
type alertService interface {
	Activate(ctx context.Context, in alert.ActivationInput) (*ent.SelfRegulationEvent, error)
	Resolve(ctx context.Context, eventID, resolvedBy, notes string) (*ent.SelfRegulationEvent, error)
	History(ctx context.Context, childID string, days int) ([]*ent.SelfRegulationEvent, error)
	Unresolved(ctx context.Context, parentID string) ([]*ent.SelfRegulationEvent, error)
	ChannelStatus() map[string]bool
}

// contactService is the emergency contact CRUD surface.
type contactService interface {
	Create(ctx context.Context, parentID string, in alert.ContactInput) (*ent.EmergencyContact, error)
	List(ctx context.Context, parentID string) ([]*ent.EmergencyContact, error)
	Update(ctx context.Context, parentID, contactID string, in alert.ContactInput) (*ent.EmergencyContact, error)
	Delete(ctx context.Context, parentID, contactID string) error
}

// tokenService is the device token lifecycle surface.
type tokenService interface {
	Register(ctx context.Context, userID, token, deviceType string) (*ent.DeviceToken, error)
	Unregister(ctx context.Context, userID, token string) error
	UnregisterAll(ctx context.Context, userID string) (int, error)
}

// childDirectory resolves child accounts for ownership checks.
type childDirectory interface {
	Child(ctx context.Context, childID string) (*ent.User, error)
}

// pushService is the direct-push surface for the parent endpoints.
type pushService interface {
	SendToUser(ctx context.Context, userID, title, body string, payload notify.Payload) notify.PushResult
	SendToChild(ctx context.Context, childID, parentID, title, body string, payload notify.Payload) notify.PushResult
}

// emailService is the email diagnostic surface.
type emailService interface {
	SendTest(ctx context.Context, to string) error
}

// taskService is the task notification surface.
type taskService interface {
	NotifyNewTask(ctx context.Context, taskID string) (notify.PushResult, error)
	NotifyTaskCompleted(ctx context.Context, taskID string) (notify.PushResult, error)
	SendReminder(ctx context.Context, taskID string) (notify.PushResult, error)
}

// sessionStatus exposes WhatsApp session state to the status endpoints.
type sessionStatus interface {
	State() notify.ClientState
	LastQR() string
}

// poolMetrics exposes worker pool occupancy for the readiness payload.
type poolMetrics interface {
	Metrics() map[string]interface{}
}

// Server holds all HTTP handler dependencies.
type Server struct {
	pool      *pgxpool.Pool
	alerts    alertService
	contacts  contactService
	tokens    tokenService
	directory childDirectory
	pusher    pushService
	emailer   emailService
	tasks     taskService
	waStatus  sessionStatus
	workers   poolMetrics
}

// ServerDeps holds all dependencies for creating a Server. Manual DI,
// no wire framework.
type ServerDeps struct {
	Pool      *pgxpool.Pool
	Alerts    alertService
	Contacts  contactService
	Tokens    tokenService
	Directory childDirectory
	Pusher    pushService
	Emailer   emailService
	Tasks     taskService
	WAStatus  sessionStatus
	Workers   poolMetrics
}

// NewServer creates a Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		pool:      deps.Pool,
		alerts:    deps.Alerts,
		contacts:  deps.Contacts,
		tokens:    deps.Tokens,
		directory: deps.Directory,
		pusher:    deps.Pusher,
		emailer:   deps.Emailer,
		tasks:     deps.Tasks,
		waStatus:  deps.WAStatus,
		workers:   deps.Workers,
	}
}
