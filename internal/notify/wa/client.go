// Package wa adapts a whatsmeow session to the notify.SessionClient
// interface.
//
// The session persists its device keys in the shared PostgreSQL database,
// so a restart reconnects without re-pairing. While unpaired, the client
// publishes QR codes for the settings frontend and stays in the
// initializing state; the dispatcher fails fast until pairing completes.
package wa

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/mdp/qrterminal/v3"
	"go.mau.fi/whatsmeow"
	waE2E "go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	waLog "go.mau.fi/whatsmeow/util/log"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"

	"tora-app.io/tora/internal/notify"
	"tora-app.io/tora/internal/pkg/logger"
)

// StatusStore persists pairing status for the settings frontend.
type StatusStore interface {
	SaveQR(ctx context.Context, code string) error
	SetAuthenticated(ctx context.Context, authenticated bool) error
}

// Client wraps a whatsmeow session.
type Client struct {
	cli     *whatsmeow.Client
	status  StatusStore
	printQR bool

	state  atomic.Int32
	lastQR atomic.Value // string
}

// NewClient builds a session client over the shared database handle.
// Call Start to connect; the client reports initializing until then.
func NewClient(db *sql.DB, status StatusStore, printQR bool) (*Client, error) {
	container := sqlstore.NewWithDB(db, "postgres", waLog.Noop)
	if err := container.Upgrade(context.Background()); err != nil {
		return nil, fmt.Errorf("upgrade whatsapp store: %w", err)
	}
	device, err := container.GetFirstDevice(context.Background())
	if err != nil {
		return nil, fmt.Errorf("get whatsapp device: %w", err)
	}

	c := &Client{
		cli:     whatsmeow.NewClient(device, waLog.Noop),
		status:  status,
		printQR: printQR,
	}
	c.setState(notify.StateInitializing)
	c.cli.AddEventHandler(c.handleEvent)
	return c, nil
}

// Start connects the session. If the device is unpaired it blocks
// consuming QR events until pairing succeeds or times out, so run it on a
// background worker.
func (c *Client) Start(ctx context.Context) error {
	if c.cli.Store.ID != nil {
		if err := c.cli.Connect(); err != nil {
			c.setState(notify.StateFailed)
			return fmt.Errorf("connect whatsapp: %w", err)
		}
		return nil
	}

	qrChan, err := c.cli.GetQRChannel(ctx)
	if err != nil {
		c.setState(notify.StateFailed)
		return fmt.Errorf("get qr channel: %w", err)
	}
	if err := c.cli.Connect(); err != nil {
		c.setState(notify.StateFailed)
		return fmt.Errorf("connect whatsapp: %w", err)
	}

	for evt := range qrChan {
		switch evt.Event {
		case "code":
			c.lastQR.Store(evt.Code)
			if err := c.status.SaveQR(ctx, evt.Code); err != nil {
				logger.Error("Persist QR code failed", zap.Error(err))
			}
			if c.printQR {
				qrterminal.GenerateHalfBlock(evt.Code, qrterminal.L, os.Stdout)
			}
			logger.Info("WhatsApp pairing QR code issued")
		case "success":
			logger.Info("WhatsApp pairing succeeded")
		default:
			logger.Warn("WhatsApp pairing ended", zap.String("event", evt.Event))
			c.setState(notify.StateFailed)
		}
	}
	return nil
}

func (c *Client) handleEvent(evt interface{}) {
	ctx := context.Background()
	switch evt.(type) {
	case *events.Connected:
		c.setState(notify.StateReady)
		c.lastQR.Store("")
		if err := c.status.SetAuthenticated(ctx, true); err != nil {
			logger.Error("Persist session status failed", zap.Error(err))
		}
		logger.Info("WhatsApp session connected")
	case *events.Disconnected:
		c.setState(notify.StateInitializing)
		logger.Warn("WhatsApp session disconnected")
	case *events.LoggedOut:
		c.setState(notify.StateFailed)
		if err := c.status.SetAuthenticated(ctx, false); err != nil {
			logger.Error("Persist session status failed", zap.Error(err))
		}
		logger.Warn("WhatsApp session logged out, re-pairing required")
	}
}

// State implements notify.SessionClient.
func (c *Client) State() notify.ClientState {
	return notify.ClientState(c.state.Load())
}

func (c *Client) setState(s notify.ClientState) {
	c.state.Store(int32(s))
	notify.RecordProviderState("whatsapp", s)
}

// LastQR returns the most recent pairing QR code, empty once paired.
func (c *Client) LastQR() string {
	if v, ok := c.lastQR.Load().(string); ok {
		return v
	}
	return ""
}

// SendText implements notify.SessionClient. The phone must already be
// normalized to international form.
func (c *Client) SendText(ctx context.Context, phone, text string) error {
	if c.State() != notify.StateReady {
		return fmt.Errorf("whatsapp session not ready")
	}
	jid := types.NewJID(strings.TrimPrefix(phone, "+"), types.DefaultUserServer)
	_, err := c.cli.SendMessage(ctx, jid, &waE2E.Message{
		Conversation: proto.String(text),
	})
	if err != nil {
		return fmt.Errorf("send whatsapp message to %s: %w", phone, err)
	}
	return nil
}

// Disconnect tears the session down on shutdown.
func (c *Client) Disconnect() {
	c.cli.Disconnect()
}
