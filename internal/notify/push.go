package notify

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tora-app.io/tora/internal/pkg/logger"
)

// TokenSource provides device token lookup and deactivation. Implemented
// by TokenRegistry; faked in tests.
type TokenSource interface {
	ActiveTokens(ctx context.Context, userID string) ([]string, error)
	Deactivate(ctx context.Context, tokens []string) error
}

// Pusher dispatches push notifications through the injected provider
// client and prunes tokens the provider rejects.
type Pusher struct {
	client PushClient
	tokens TokenSource
}

// NewPusher creates a Pusher. A nil client disables the channel; sends
// then report failure without calling out.
func NewPusher(client PushClient, tokens TokenSource) *Pusher {
	return &Pusher{client: client, tokens: tokens}
}

// Ready reports whether the provider client can send.
func (p *Pusher) Ready() bool {
	return p.client != nil && p.client.State() == StateReady
}

// Send multicasts to the given tokens. Tokens the provider rejects as
// unregistered are deactivated before returning; the cleanup is a single
// indexed update and must not be handed to a worker pool, pool tasks
// never submit further pool work.
func (p *Pusher) Send(ctx context.Context, tokens []string, title, body string, payload Payload) PushResult {
	if len(tokens) == 0 {
		return PushResult{Success: false, Message: "No active tokens found"}
	}
	if !p.Ready() {
		recordDispatch("push", 0, len(tokens))
		return PushResult{
			Success:     false,
			Message:     "Push provider unavailable",
			FailedCount: len(tokens),
		}
	}

	resp, err := p.client.SendEachForMulticast(ctx, MulticastMessage{
		Tokens: tokens,
		Title:  title,
		Body:   body,
		Data:   payload.Data(),
	})
	if err != nil {
		recordDispatch("push", 0, len(tokens))
		logger.Error("Push multicast failed", zap.Error(err))
		return PushResult{
			Success:     false,
			Message:     "Push dispatch failed",
			FailedCount: len(tokens),
		}
	}

	result := PushResult{
		Success:     resp.SuccessCount > 0,
		Message:     fmt.Sprintf("Sent %d notifications, %d failed", resp.SuccessCount, resp.FailureCount),
		SentCount:   resp.SuccessCount,
		FailedCount: resp.FailureCount,
	}

	var invalid []string
	for i, r := range resp.Responses {
		if i >= len(tokens) {
			break
		}
		tr := TokenResult{Token: tokens[i], Success: r.Success, Unregistered: r.Unregistered}
		if r.Err != nil {
			tr.Error = r.Err.Error()
		}
		result.Responses = append(result.Responses, tr)
		if r.Unregistered {
			invalid = append(invalid, tokens[i])
		}
	}

	if len(invalid) > 0 {
		if err := p.tokens.Deactivate(ctx, invalid); err != nil {
			logger.Error("Token deactivation failed",
				zap.Int("count", len(invalid)),
				zap.Error(err),
			)
		}
	}

	recordDispatch("push", resp.SuccessCount, resp.FailureCount)
	return result
}

// SendToUser sends to all active tokens of one user.
func (p *Pusher) SendToUser(ctx context.Context, userID, title, body string, payload Payload) PushResult {
	tokens, err := p.tokens.ActiveTokens(ctx, userID)
	if err != nil {
		logger.Error("Token lookup failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return PushResult{Success: false, Message: "Token lookup failed"}
	}
	return p.Send(ctx, tokens, title, body, payload)
}

// SendToChild sends to the union of the child's and the parent's active
// tokens, so a caregiver sees what the child was prompted with.
func (p *Pusher) SendToChild(ctx context.Context, childID, parentID, title, body string, payload Payload) PushResult {
	tokens, err := p.tokens.ActiveTokens(ctx, childID)
	if err != nil {
		logger.Error("Token lookup failed",
			zap.String("user_id", childID),
			zap.Error(err),
		)
		return PushResult{Success: false, Message: "Token lookup failed"}
	}
	if parentID != "" {
		parentTokens, err := p.tokens.ActiveTokens(ctx, parentID)
		if err != nil {
			logger.Error("Parent token lookup failed",
				zap.String("user_id", parentID),
				zap.Error(err),
			)
		} else {
			tokens = mergeTokens(tokens, parentTokens)
		}
	}
	return p.Send(ctx, tokens, title, body, payload)
}

func mergeTokens(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, t := range a {
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	for _, t := range b {
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}
