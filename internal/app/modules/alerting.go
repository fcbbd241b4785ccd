package modules

import (
	"context"

	"github.com/riverqueue/river"

	"tora-app.io/tora/internal/alert"
	"tora-app.io/tora/internal/api/handlers"
	"tora-app.io/tora/internal/jobs"
)

// AlertingModule owns the alert pipeline: event store, recipient
// resolution, contact CRUD, the orchestrator, and task notifications.
type AlertingModule struct {
	infra *Infrastructure

	Store        *alert.EventStore
	Resolver     *alert.RecipientResolver
	Contacts     *alert.ContactManager
	Orchestrator *alert.Orchestrator
	Tasks        *alert.TaskNotifier
}

// NewAlertingModule wires the pipeline on top of the notification
// channels.
func NewAlertingModule(infra *Infrastructure, notifications *NotificationsModule) *AlertingModule {
	resolver := alert.NewRecipientResolver(infra.EntClient, infra.Redis, infra.Config.Redis.RecipientTTL)
	store := alert.NewEventStore(infra.EntClient)

	return &AlertingModule{
		infra:    infra,
		Store:    store,
		Resolver: resolver,
		Contacts: alert.NewContactManager(infra.EntClient, resolver),
		Orchestrator: alert.NewOrchestrator(
			store,
			resolver,
			notifications.Pusher,
			notifications.Emailer,
			notifications.WhatsApp,
			infra.Pools,
		),
		Tasks: alert.NewTaskNotifier(infra.EntClient, resolver, notifications.Pusher),
	}
}

// Name implements Module.
func (m *AlertingModule) Name() string { return "alerting" }

// ContributeServerDeps implements Module.
func (m *AlertingModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	deps.Alerts = m.Orchestrator
	deps.Contacts = m.Contacts
	deps.Directory = m.Resolver
	deps.Tasks = m.Tasks
}

// RegisterWorkers implements Module.
func (m *AlertingModule) RegisterWorkers(workers *river.Workers) {
	river.AddWorker(workers, jobs.NewTaskReminderWorker(m.infra.EntClient, m.Tasks))
}

// Shutdown implements Module.
func (m *AlertingModule) Shutdown(context.Context) error { return nil }
