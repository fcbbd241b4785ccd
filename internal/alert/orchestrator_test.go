package alert

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tora-app.io/tora/ent"
	"tora-app.io/tora/ent/selfregulationevent"
	apperrors "tora-app.io/tora/internal/pkg/errors"
	"tora-app.io/tora/internal/notify"
	"tora-app.io/tora/internal/pkg/logger"
	"tora-app.io/tora/internal/pkg/worker"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "json")
	m.Run()
}

type fakeStore struct {
	created   []ActivationInput
	createErr error
	resolved  map[string]string
}

func (f *fakeStore) Create(_ context.Context, in ActivationInput) (*ent.SelfRegulationEvent, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, in)
	return &ent.SelfRegulationEvent{
		ID:                  "evt-1",
		ChildID:             in.ChildID,
		Level:               selfregulationevent.Level(in.Level),
		Emotion:             in.Emotion,
		AssistanceRequested: in.AssistanceRequested,
		CreatedAt:           time.Now(),
	}, nil
}

func (f *fakeStore) Resolve(_ context.Context, eventID, resolvedBy, _ string) (*ent.SelfRegulationEvent, error) {
	if f.resolved == nil {
		f.resolved = make(map[string]string)
	}
	if _, ok := f.resolved[eventID]; ok {
		return nil, apperrors.ErrEventAlreadyResolvedf(eventID)
	}
	f.resolved[eventID] = resolvedBy
	return &ent.SelfRegulationEvent{ID: eventID, Resolved: true, ResolvedBy: resolvedBy}, nil
}

func (f *fakeStore) History(_ context.Context, childID string, _ int) ([]*ent.SelfRegulationEvent, error) {
	return []*ent.SelfRegulationEvent{{ID: "evt-1", ChildID: childID}}, nil
}

func (f *fakeStore) Unresolved(_ context.Context, childIDs []string) ([]*ent.SelfRegulationEvent, error) {
	var events []*ent.SelfRegulationEvent
	for _, id := range childIDs {
		events = append(events, &ent.SelfRegulationEvent{ID: "evt-" + id, ChildID: id})
	}
	return events, nil
}

type fakeRecipients struct {
	children   map[string]*ent.User
	recipients Recipients
	resolveErr error
}

func (f *fakeRecipients) Child(_ context.Context, childID string) (*ent.User, error) {
	child, ok := f.children[childID]
	if !ok {
		return nil, apperrors.ErrChildNotFoundf(childID)
	}
	return child, nil
}

func (f *fakeRecipients) ChildIDs(_ context.Context, parentID string) ([]string, error) {
	var ids []string
	for id, child := range f.children {
		if child.ParentID == parentID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (f *fakeRecipients) Resolve(_ context.Context, _ string) (Recipients, error) {
	if f.resolveErr != nil {
		return Recipients{}, f.resolveErr
	}
	return f.recipients, nil
}

type fakePush struct {
	mu    sync.Mutex
	calls []notify.Payload
	res   notify.PushResult
}

func (f *fakePush) Ready() bool { return true }

func (f *fakePush) SendToChild(_ context.Context, _, _, _, _ string, payload notify.Payload) notify.PushResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, payload)
	return f.res
}

func (f *fakePush) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeEmail struct {
	mu       sync.Mutex
	contacts [][]notify.Contact
	res      notify.BatchResult
}

func (f *fakeEmail) Ready() bool { return true }

func (f *fakeEmail) SendBatch(_ context.Context, contacts []notify.Contact, _, _, _ string) notify.BatchResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contacts = append(f.contacts, contacts)
	return f.res
}

func (f *fakeEmail) batchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.contacts)
}

type fakeWA struct {
	mu       sync.Mutex
	contacts [][]notify.Contact
	res      notify.BatchResult
}

func (f *fakeWA) Ready() bool { return true }

func (f *fakeWA) SendBatch(_ context.Context, contacts []notify.Contact, _ string) notify.BatchResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contacts = append(f.contacts, contacts)
	return f.res
}

func (f *fakeWA) batchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.contacts)
}

// inlineDetacher runs detached tasks synchronously so the test observes
// the complete fan-out before asserting.
type inlineDetacher struct{}

func (inlineDetacher) SubmitDetached(_ string, task worker.Task) error {
	task(context.Background())
	return nil
}

type failingDetacher struct{}

func (failingDetacher) SubmitDetached(_ string, _ worker.Task) error {
	return errors.New("pool closed")
}

func newTestOrchestrator(store *fakeStore, rec *fakeRecipients, push *fakePush, email *fakeEmail, wa *fakeWA, d detacher) *Orchestrator {
	return NewOrchestrator(store, rec, push, email, wa, d)
}

func TestActivatePersistsThenFansOut(t *testing.T) {
	store := &fakeStore{}
	rec := &fakeRecipients{
		children: map[string]*ent.User{"child-1": {ID: "child-1", Name: "Ana", ParentID: "parent-1"}},
		recipients: Recipients{
			ParentID: "parent-1",
			Contacts: []notify.Contact{{ID: "c1", Email: "a@b.c", Phone: "0911111111"}},
		},
	}
	push, email, wa := &fakePush{}, &fakeEmail{}, &fakeWA{}
	o := newTestOrchestrator(store, rec, push, email, wa, inlineDetacher{})

	event, err := o.Activate(context.Background(), ActivationInput{
		ChildID: "child-1", Level: "HIGH", AssistanceRequested: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "evt-1", event.ID)

	require.Len(t, store.created, 1)
	require.Len(t, push.calls, 1)
	require.Len(t, email.contacts, 1)
	require.Len(t, wa.contacts, 1)
	assert.Equal(t, "c1", email.contacts[0][0].ID)

	data := push.calls[0].Data()
	assert.Equal(t, "SELF_REGULATION_ALERT", data["type"])
	assert.Equal(t, "Ana", data["childName"])
}

func TestActivateUnknownChild(t *testing.T) {
	store := &fakeStore{}
	rec := &fakeRecipients{children: map[string]*ent.User{}}
	o := newTestOrchestrator(store, rec, &fakePush{}, &fakeEmail{}, &fakeWA{}, inlineDetacher{})

	_, err := o.Activate(context.Background(), ActivationInput{ChildID: "nope", Level: "LOW"})
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeChildNotFound, appErr.Code)
	assert.Empty(t, store.created, "no event persisted for unknown child")
}

func TestActivatePersistFailureAbortsFanOut(t *testing.T) {
	store := &fakeStore{createErr: errors.New("db down")}
	rec := &fakeRecipients{children: map[string]*ent.User{"child-1": {ID: "child-1", Name: "Ana"}}}
	push := &fakePush{}
	o := newTestOrchestrator(store, rec, push, &fakeEmail{}, &fakeWA{}, inlineDetacher{})

	_, err := o.Activate(context.Background(), ActivationInput{ChildID: "child-1", Level: "LOW"})
	require.Error(t, err)
	assert.Empty(t, push.calls, "no dispatch when persistence fails")
}

func TestActivateSucceedsWhenFanOutCannotBeScheduled(t *testing.T) {
	store := &fakeStore{}
	rec := &fakeRecipients{children: map[string]*ent.User{"child-1": {ID: "child-1", Name: "Ana"}}}
	o := newTestOrchestrator(store, rec, &fakePush{}, &fakeEmail{}, &fakeWA{}, failingDetacher{})

	event, err := o.Activate(context.Background(), ActivationInput{ChildID: "child-1", Level: "LOW"})
	require.NoError(t, err, "activation must not fail on fan-out scheduling")
	assert.Equal(t, "evt-1", event.ID)
}

func TestFanOutContinuesWithEmptyRecipients(t *testing.T) {
	store := &fakeStore{}
	rec := &fakeRecipients{
		children:   map[string]*ent.User{"child-1": {ID: "child-1", Name: "Ana"}},
		recipients: Recipients{}, // no parent, no contacts
	}
	push, email, wa := &fakePush{}, &fakeEmail{}, &fakeWA{}
	o := newTestOrchestrator(store, rec, push, email, wa, inlineDetacher{})

	_, err := o.Activate(context.Background(), ActivationInput{ChildID: "child-1", Level: "MEDIUM"})
	require.NoError(t, err)

	// Channels are still invoked; push can reach the child's own devices
	// and the batch channels see empty contact lists.
	require.Len(t, push.calls, 1)
	require.Len(t, email.contacts, 1)
	assert.Empty(t, email.contacts[0])
}

func TestFanOutCompletesOnSingleWorkerPools(t *testing.T) {
	// Real pools with one worker each: delivery must still complete even
	// when the coordinator and every channel compete for single slots.
	pools, err := worker.NewPools(context.Background(), worker.PoolConfig{
		GeneralPoolSize: 1,
		NotifyPoolSize:  1,
	})
	require.NoError(t, err)
	defer pools.Shutdown()

	store := &fakeStore{}
	rec := &fakeRecipients{
		children: map[string]*ent.User{"child-1": {ID: "child-1", Name: "Ana", ParentID: "parent-1"}},
		recipients: Recipients{
			ParentID: "parent-1",
			Contacts: []notify.Contact{{ID: "c1", Email: "a@b.c", Phone: "0911111111"}},
		},
	}
	push, email, wa := &fakePush{}, &fakeEmail{}, &fakeWA{}
	o := newTestOrchestrator(store, rec, push, email, wa, pools)

	_, err = o.Activate(context.Background(), ActivationInput{ChildID: "child-1", Level: "CRITICAL"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return push.callCount() == 1 && email.batchCount() == 1 && wa.batchCount() == 1
	}, 5*time.Second, 10*time.Millisecond, "all three channels must dispatch")
}

func TestFanOutContinuesWhenResolutionFails(t *testing.T) {
	store := &fakeStore{}
	rec := &fakeRecipients{
		children:   map[string]*ent.User{"child-1": {ID: "child-1", Name: "Ana"}},
		resolveErr: errors.New("cache and store down"),
	}
	push, email, wa := &fakePush{}, &fakeEmail{}, &fakeWA{}
	o := newTestOrchestrator(store, rec, push, email, wa, inlineDetacher{})

	_, err := o.Activate(context.Background(), ActivationInput{ChildID: "child-1", Level: "HIGH"})
	require.NoError(t, err)

	// Push still runs against the child's own devices; the batch channels
	// see empty contact lists.
	require.Len(t, push.calls, 1)
	require.Len(t, email.contacts, 1)
	assert.Empty(t, email.contacts[0])
	require.Len(t, wa.contacts, 1)
}

func TestUnresolvedScopedToParent(t *testing.T) {
	rec := &fakeRecipients{children: map[string]*ent.User{
		"child-1": {ID: "child-1", ParentID: "parent-1"},
		"child-2": {ID: "child-2", ParentID: "parent-2"},
	}}
	o := newTestOrchestrator(&fakeStore{}, rec, &fakePush{}, &fakeEmail{}, &fakeWA{}, inlineDetacher{})

	events, err := o.Unresolved(context.Background(), "parent-1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "child-1", events[0].ChildID)
}

func TestResolveRejectsSecondResolution(t *testing.T) {
	store := &fakeStore{}
	rec := &fakeRecipients{children: map[string]*ent.User{}}
	o := newTestOrchestrator(store, rec, &fakePush{}, &fakeEmail{}, &fakeWA{}, inlineDetacher{})

	_, err := o.Resolve(context.Background(), "evt-1", "parent-1", "calmed down")
	require.NoError(t, err)

	_, err = o.Resolve(context.Background(), "evt-1", "parent-2", "")
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeEventAlreadyResolved, appErr.Code)
	assert.Equal(t, "parent-1", store.resolved["evt-1"], "first resolver record intact")
}

func TestHistoryValidatesChild(t *testing.T) {
	rec := &fakeRecipients{children: map[string]*ent.User{"child-1": {ID: "child-1"}}}
	o := newTestOrchestrator(&fakeStore{}, rec, &fakePush{}, &fakeEmail{}, &fakeWA{}, inlineDetacher{})

	events, err := o.History(context.Background(), "child-1", 30)
	require.NoError(t, err)
	require.Len(t, events, 1)

	_, err = o.History(context.Background(), "ghost", 30)
	require.Error(t, err)
}
