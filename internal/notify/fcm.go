package notify

import (
	"context"
	"fmt"
	"sync/atomic"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"tora-app.io/tora/internal/pkg/logger"
)

// FCMClient adapts the Firebase Cloud Messaging client to PushClient.
//
// Credential exchange can take seconds on a cold start, so initialization
// runs off the request path; until Init completes the client reports
// StateInitializing and Pusher fails fast.
type FCMClient struct {
	credentialsFile string
	state           atomic.Int32
	client          *messaging.Client
}

// NewFCMClient creates an uninitialized FCM client. Call Init before use.
func NewFCMClient(credentialsFile string) *FCMClient {
	c := &FCMClient{credentialsFile: credentialsFile}
	RecordProviderState("push", StateInitializing)
	return c
}

// Init connects to Firebase and transitions the client to ready or failed.
func (c *FCMClient) Init(ctx context.Context) error {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(c.credentialsFile))
	if err != nil {
		c.setState(StateFailed)
		return fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		c.setState(StateFailed)
		return fmt.Errorf("init fcm messaging: %w", err)
	}
	c.client = client
	c.setState(StateReady)
	logger.Info("FCM client ready")
	return nil
}

// State implements PushClient.
func (c *FCMClient) State() ClientState {
	return ClientState(c.state.Load())
}

func (c *FCMClient) setState(s ClientState) {
	c.state.Store(int32(s))
	RecordProviderState("push", s)
}

// SendEachForMulticast implements PushClient.
func (c *FCMClient) SendEachForMulticast(ctx context.Context, msg MulticastMessage) (*MulticastResponse, error) {
	if c.State() != StateReady {
		return nil, fmt.Errorf("fcm client not ready")
	}

	badge := 1
	resp, err := c.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens: msg.Tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "default",
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Badge: &badge,
					Sound: "default",
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("fcm multicast: %w", err)
	}

	out := &MulticastResponse{
		SuccessCount: resp.SuccessCount,
		FailureCount: resp.FailureCount,
	}
	for _, r := range resp.Responses {
		sr := SendResponse{Success: r.Success, Err: r.Error}
		if r.Error != nil {
			sr.Unregistered = messaging.IsUnregistered(r.Error) ||
				messaging.IsInvalidArgument(r.Error)
		}
		out.Responses = append(out.Responses, sr)
	}
	return out, nil
}
