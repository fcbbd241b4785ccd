package modules

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"tora-app.io/tora/internal/api/handlers"
	"tora-app.io/tora/internal/jobs"
	"tora-app.io/tora/internal/notify"
	"tora-app.io/tora/internal/notify/wa"
	"tora-app.io/tora/internal/pkg/logger"
)

// NotificationsModule owns the provider clients and channel dispatchers.
// Provider initialization runs on the worker pools; the HTTP server comes
// up immediately and channels report not-ready until their client does.
type NotificationsModule struct {
	infra *Infrastructure

	Tokens   *notify.TokenRegistry
	Pusher   *notify.Pusher
	Emailer  *notify.Emailer
	WhatsApp *notify.WhatsAppSender

	waClient *wa.Client
	waStore  *wa.EntStatusStore
}

// NewNotificationsModule wires the three channels from config. Disabled
// channels get nil clients and fail fast on dispatch.
func NewNotificationsModule(infra *Infrastructure) (*NotificationsModule, error) {
	cfg := infra.Config.Notify
	m := &NotificationsModule{
		infra:  infra,
		Tokens: notify.NewTokenRegistry(infra.EntClient),
	}

	var pushClient notify.PushClient
	if cfg.Push.Enabled {
		fcm := notify.NewFCMClient(cfg.Push.CredentialsFile)
		if err := infra.Pools.SubmitDetached("general", func(ctx context.Context) {
			if err := fcm.Init(ctx); err != nil {
				logger.Error("FCM initialization failed, push channel down", zap.Error(err))
			}
		}); err != nil {
			return nil, fmt.Errorf("schedule fcm init: %w", err)
		}
		pushClient = fcm
	}
	m.Pusher = notify.NewPusher(pushClient, m.Tokens)

	var transport notify.EmailTransport
	if cfg.Email.Enabled {
		transport = notify.NewSMTPTransport(
			cfg.Email.Host, cfg.Email.Port,
			cfg.Email.Username, cfg.Email.Password,
		)
	}
	m.Emailer = notify.NewEmailer(transport, cfg.Email.From, cfg.Email.SendDelay)

	var session notify.SessionClient
	if cfg.WhatsApp.Enabled {
		m.waStore = wa.NewEntStatusStore(infra.EntClient)
		waClient, err := wa.NewClient(infra.DB.DB, m.waStore, cfg.WhatsApp.PrintQR)
		if err != nil {
			return nil, fmt.Errorf("init whatsapp client: %w", err)
		}
		// Pairing can block until the QR is scanned; it holds a general
		// pool slot, never the startup path. The notify pool stays
		// reserved for channel sends.
		if err := infra.Pools.SubmitDetached("general", func(ctx context.Context) {
			if err := waClient.Start(ctx); err != nil {
				logger.Error("WhatsApp session start failed", zap.Error(err))
			}
		}); err != nil {
			return nil, fmt.Errorf("schedule whatsapp start: %w", err)
		}
		m.waClient = waClient
		session = waClient
	}
	m.WhatsApp = notify.NewWhatsAppSender(session, cfg.WhatsApp.DefaultCountryCode, cfg.WhatsApp.SendDelay)

	return m, nil
}

// Name implements Module.
func (m *NotificationsModule) Name() string { return "notifications" }

// ContributeServerDeps implements Module.
func (m *NotificationsModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	deps.Tokens = m.Tokens
	deps.Pusher = m.Pusher
	deps.Emailer = m.Emailer
	if m.waClient != nil {
		deps.WAStatus = m.waClient
	}
}

// RegisterWorkers implements Module.
func (m *NotificationsModule) RegisterWorkers(workers *river.Workers) {
	river.AddWorker(workers, jobs.NewTokenCleanupWorker(m.Tokens, m.infra.Config.River.TokenRetention))
}

// Shutdown implements Module.
func (m *NotificationsModule) Shutdown(context.Context) error {
	if m.waClient != nil {
		m.waClient.Disconnect()
	}
	return nil
}
