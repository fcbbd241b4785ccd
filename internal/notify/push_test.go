package notify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePushClient struct {
	state ClientState
	sent  []MulticastMessage
	resp  *MulticastResponse
	err   error
}

func (f *fakePushClient) State() ClientState { return f.state }

func (f *fakePushClient) SendEachForMulticast(_ context.Context, msg MulticastMessage) (*MulticastResponse, error) {
	f.sent = append(f.sent, msg)
	return f.resp, f.err
}

type fakeTokenSource struct {
	mu          sync.Mutex
	byUser      map[string][]string
	lookupErr   error
	deactivated []string
}

func (f *fakeTokenSource) ActiveTokens(_ context.Context, userID string) ([]string, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	return f.byUser[userID], nil
}

func (f *fakeTokenSource) Deactivate(_ context.Context, tokens []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deactivated = append(f.deactivated, tokens...)
	return nil
}

func TestPusherSendNoTokens(t *testing.T) {
	p := NewPusher(&fakePushClient{state: StateReady}, &fakeTokenSource{})
	res := p.Send(context.Background(), nil, "t", "b", CheckinPayload{ChildID: "c1"})
	assert.False(t, res.Success)
	assert.Equal(t, "No active tokens found", res.Message)
}

func TestPusherSendProviderNotReady(t *testing.T) {
	p := NewPusher(&fakePushClient{state: StateInitializing}, &fakeTokenSource{})
	res := p.Send(context.Background(), []string{"tok1", "tok2"}, "t", "b", CheckinPayload{ChildID: "c1"})
	assert.False(t, res.Success)
	assert.Equal(t, 2, res.FailedCount)
}

func TestPusherSendNilClient(t *testing.T) {
	p := NewPusher(nil, &fakeTokenSource{})
	res := p.Send(context.Background(), []string{"tok1"}, "t", "b", CheckinPayload{ChildID: "c1"})
	assert.False(t, res.Success)
}

func TestPusherSendDeactivatesUnregisteredTokens(t *testing.T) {
	client := &fakePushClient{
		state: StateReady,
		resp: &MulticastResponse{
			SuccessCount: 1,
			FailureCount: 1,
			Responses: []SendResponse{
				{Success: true},
				{Success: false, Err: errors.New("registration-token-not-registered"), Unregistered: true},
			},
		},
	}
	tokens := &fakeTokenSource{}
	p := NewPusher(client, tokens)

	res := p.Send(context.Background(), []string{"good", "stale"}, "t", "b", CheckinPayload{ChildID: "c1"})

	require.True(t, res.Success)
	assert.Equal(t, 1, res.SentCount)
	assert.Equal(t, 1, res.FailedCount)
	assert.Equal(t, []string{"stale"}, tokens.deactivated)

	require.Len(t, client.sent, 1)
	assert.Equal(t, "EMOTION_CHECKIN", client.sent[0].Data["type"])
}

func TestPusherSendToChildMergesParentTokens(t *testing.T) {
	client := &fakePushClient{
		state: StateReady,
		resp: &MulticastResponse{
			SuccessCount: 3,
			Responses:    []SendResponse{{Success: true}, {Success: true}, {Success: true}},
		},
	}
	tokens := &fakeTokenSource{byUser: map[string][]string{
		"child-1":  {"ct1", "shared"},
		"parent-1": {"shared", "pt1"},
	}}
	p := NewPusher(client, tokens)

	res := p.SendToChild(context.Background(), "child-1", "parent-1", "t", "b", CheckinPayload{ChildID: "child-1"})

	require.True(t, res.Success)
	require.Len(t, client.sent, 1)
	assert.ElementsMatch(t, []string{"ct1", "shared", "pt1"}, client.sent[0].Tokens)
}

func TestPusherSendToUserLookupError(t *testing.T) {
	tokens := &fakeTokenSource{lookupErr: errors.New("db down")}
	p := NewPusher(&fakePushClient{state: StateReady}, tokens)
	res := p.SendToUser(context.Background(), "u1", "t", "b", CheckinPayload{ChildID: "u1"})
	assert.False(t, res.Success)
}
