package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tora-app.io/tora/ent"
	"tora-app.io/tora/ent/selfregulationevent"
	"tora-app.io/tora/internal/alert"
	"tora-app.io/tora/internal/api/middleware"
	apperrors "tora-app.io/tora/internal/pkg/errors"
	"tora-app.io/tora/internal/notify"
	"tora-app.io/tora/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "json")
	gin.SetMode(gin.TestMode)
	m.Run()
}

type fakeAlerts struct {
	activated  []alert.ActivationInput
	activation *ent.SelfRegulationEvent
	resolveErr error
}

func (f *fakeAlerts) Activate(_ context.Context, in alert.ActivationInput) (*ent.SelfRegulationEvent, error) {
	f.activated = append(f.activated, in)
	if f.activation != nil {
		return f.activation, nil
	}
	return &ent.SelfRegulationEvent{
		ID:        "evt-1",
		ChildID:   in.ChildID,
		Level:     selfregulationevent.Level(in.Level),
		CreatedAt: time.Now(),
	}, nil
}

func (f *fakeAlerts) Resolve(_ context.Context, eventID, resolvedBy, _ string) (*ent.SelfRegulationEvent, error) {
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	now := time.Now()
	return &ent.SelfRegulationEvent{
		ID: eventID, Resolved: true, ResolvedBy: resolvedBy, ResolvedAt: &now,
	}, nil
}

func (f *fakeAlerts) History(_ context.Context, childID string, _ int) ([]*ent.SelfRegulationEvent, error) {
	return []*ent.SelfRegulationEvent{{ID: "evt-1", ChildID: childID}}, nil
}

func (f *fakeAlerts) Unresolved(_ context.Context, parentID string) ([]*ent.SelfRegulationEvent, error) {
	if parentID != "parent-1" {
		return nil, nil
	}
	return []*ent.SelfRegulationEvent{{ID: "evt-1", ChildID: "child-1"}}, nil
}

func (f *fakeAlerts) ChannelStatus() map[string]bool {
	return map[string]bool{"push": true, "email": true, "whatsapp": false}
}

type fakeDirectory struct {
	children map[string]*ent.User
}

func (f *fakeDirectory) Child(_ context.Context, childID string) (*ent.User, error) {
	child, ok := f.children[childID]
	if !ok {
		return nil, apperrors.ErrChildNotFoundf(childID)
	}
	return child, nil
}

type fakeTokens struct {
	registered []string
}

func (f *fakeTokens) Register(_ context.Context, userID, token, deviceType string) (*ent.DeviceToken, error) {
	f.registered = append(f.registered, token)
	return &ent.DeviceToken{ID: "dt-1", UserID: userID, Active: true}, nil
}

func (f *fakeTokens) Unregister(_ context.Context, _, token string) error {
	if token == "missing" {
		return apperrors.NotFound(apperrors.CodeTokenNotFound, "device token not found for user")
	}
	return nil
}

func (f *fakeTokens) UnregisterAll(_ context.Context, _ string) (int, error) {
	return 2, nil
}

type fakeDirectPush struct {
	toChild []string
	toUser  []string
}

func (f *fakeDirectPush) SendToChild(_ context.Context, childID, _, _, _ string, _ notify.Payload) notify.PushResult {
	f.toChild = append(f.toChild, childID)
	return notify.PushResult{Success: true, SentCount: 1}
}

func (f *fakeDirectPush) SendToUser(_ context.Context, userID, _, _ string, _ notify.Payload) notify.PushResult {
	f.toUser = append(f.toUser, userID)
	return notify.PushResult{Success: true, SentCount: 1}
}

type fakeTasks struct {
	newTask   []string
	completed []string
	reminded  []string
}

func (f *fakeTasks) NotifyNewTask(_ context.Context, taskID string) (notify.PushResult, error) {
	f.newTask = append(f.newTask, taskID)
	return notify.PushResult{Success: true, SentCount: 1}, nil
}

func (f *fakeTasks) NotifyTaskCompleted(_ context.Context, taskID string) (notify.PushResult, error) {
	f.completed = append(f.completed, taskID)
	return notify.PushResult{Success: true, SentCount: 1}, nil
}

func (f *fakeTasks) SendReminder(_ context.Context, taskID string) (notify.PushResult, error) {
	if taskID == "missing" {
		return notify.PushResult{}, apperrors.NotFound(apperrors.CodeTaskNotFound, "task not found")
	}
	f.reminded = append(f.reminded, taskID)
	return notify.PushResult{Success: true, SentCount: 1}, nil
}

type fakeSessionStatus struct {
	state notify.ClientState
	qr    string
}

func (f *fakeSessionStatus) State() notify.ClientState { return f.state }
func (f *fakeSessionStatus) LastQR() string            { return f.qr }

// asUser injects an authenticated identity, standing in for the JWT
// middleware which has its own tests.
func asUser(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(
			middleware.SetUserContext(c.Request.Context(), userID, "Test", role),
		)
		c.Next()
	}
}

type testEnv struct {
	alerts *fakeAlerts
	push   *fakeDirectPush
	tokens *fakeTokens
	tasks  *fakeTasks
	server *Server
}

func newTestEnv() *testEnv {
	alerts := &fakeAlerts{}
	push := &fakeDirectPush{}
	tokens := &fakeTokens{}
	tasks := &fakeTasks{}
	server := NewServer(ServerDeps{
		Alerts: alerts,
		Tokens: tokens,
		Directory: &fakeDirectory{children: map[string]*ent.User{
			"child-1": {ID: "child-1", Name: "Ana", ParentID: "parent-1"},
		}},
		Pusher:   push,
		Tasks:    tasks,
		WAStatus: &fakeSessionStatus{state: notify.StateReady},
	})
	return &testEnv{alerts: alerts, push: push, tokens: tokens, tasks: tasks, server: server}
}

func doJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestActivateHandler(t *testing.T) {
	env := newTestEnv()
	r := gin.New()
	r.Use(middleware.ErrorHandler(), asUser("child-1", middleware.RoleChild))
	r.POST("/activate", env.server.Activate)

	w := doJSON(r, http.MethodPost, "/activate", gin.H{
		"level":               "HIGH",
		"emotion":             "frustrated",
		"assistanceRequested": true,
	})

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, env.alerts.activated, 1)
	in := env.alerts.activated[0]
	assert.Equal(t, "child-1", in.ChildID, "child identity comes from the JWT")
	assert.Equal(t, "HIGH", in.Level)
	assert.True(t, in.AssistanceRequested)
}

func TestActivateHandlerRequiresLevel(t *testing.T) {
	env := newTestEnv()
	r := gin.New()
	r.Use(middleware.ErrorHandler(), asUser("child-1", middleware.RoleChild))
	r.POST("/activate", env.server.Activate)

	w := doJSON(r, http.MethodPost, "/activate", gin.H{"emotion": "sad"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, env.alerts.activated)
}

func TestResolveHandlerConflict(t *testing.T) {
	env := newTestEnv()
	env.alerts.resolveErr = apperrors.ErrEventAlreadyResolvedf("evt-1")
	r := gin.New()
	r.Use(middleware.ErrorHandler(), asUser("parent-1", middleware.RoleParent))
	r.PUT("/resolve/:id", env.server.ResolveEvent)

	w := doJSON(r, http.MethodPut, "/resolve/evt-1", gin.H{"notes": "again"})
	assert.Equal(t, http.StatusConflict, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "EVENT_ALREADY_RESOLVED", body["code"])
}

func TestChildHistoryOwnershipCheck(t *testing.T) {
	env := newTestEnv()
	r := gin.New()
	r.Use(middleware.ErrorHandler(), asUser("parent-2", middleware.RoleParent))
	r.GET("/history/:childId", env.server.ChildHistory)

	w := doJSON(r, http.MethodGet, "/history/child-1", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestChildHistoryOwnParent(t *testing.T) {
	env := newTestEnv()
	r := gin.New()
	r.Use(middleware.ErrorHandler(), asUser("parent-1", middleware.RoleParent))
	r.GET("/history/:childId", env.server.ChildHistory)

	w := doJSON(r, http.MethodGet, "/history/child-1?days=7", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Events []eventResponse `json:"events"`
		Days   int             `json:"days"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 7, body.Days)
	require.Len(t, body.Events, 1)
}

func TestUnresolvedEventsHandler(t *testing.T) {
	env := newTestEnv()
	r := gin.New()
	r.Use(middleware.ErrorHandler(), asUser("parent-1", middleware.RoleParent))
	r.GET("/unresolved", env.server.UnresolvedEvents)

	w := doJSON(r, http.MethodGet, "/unresolved", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Events []eventResponse `json:"events"`
		Count  int             `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	require.Len(t, body.Events, 1)
	assert.Equal(t, "child-1", body.Events[0].ChildID)
}

func TestHistoryRejectsBadDays(t *testing.T) {
	env := newTestEnv()
	r := gin.New()
	r.Use(middleware.ErrorHandler(), asUser("child-1", middleware.RoleChild))
	r.GET("/my-history", env.server.MyHistory)

	w := doJSON(r, http.MethodGet, "/my-history?days=-3", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterTokenHandler(t *testing.T) {
	env := newTestEnv()
	r := gin.New()
	r.Use(middleware.ErrorHandler(), asUser("child-1", middleware.RoleChild))
	r.POST("/register-token", env.server.RegisterToken)

	w := doJSON(r, http.MethodPost, "/register-token", gin.H{
		"token": "fcm-token-1", "deviceType": "ANDROID",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"fcm-token-1"}, env.tokens.registered)

	w = doJSON(r, http.MethodPost, "/register-token", gin.H{"token": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnregisterTokenNotFound(t *testing.T) {
	env := newTestEnv()
	r := gin.New()
	r.Use(middleware.ErrorHandler(), asUser("child-1", middleware.RoleChild))
	r.DELETE("/unregister-token/:token", env.server.UnregisterToken)

	w := doJSON(r, http.MethodDelete, "/unregister-token/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSendToChildOwnershipCheck(t *testing.T) {
	env := newTestEnv()
	r := gin.New()
	r.Use(middleware.ErrorHandler(), asUser("parent-2", middleware.RoleParent))
	r.POST("/send-to-child", env.server.SendToChild)

	w := doJSON(r, http.MethodPost, "/send-to-child", gin.H{
		"childId": "child-1", "title": "Hi", "body": "Check in",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, env.push.toChild)
}

func TestSendToChildHappyPath(t *testing.T) {
	env := newTestEnv()
	r := gin.New()
	r.Use(middleware.ErrorHandler(), asUser("parent-1", middleware.RoleParent))
	r.POST("/send-to-child", env.server.SendToChild)

	w := doJSON(r, http.MethodPost, "/send-to-child", gin.H{
		"childId": "child-1", "title": "Hi", "body": "Check in",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"child-1"}, env.push.toChild)
}

func TestTaskNotificationHandlers(t *testing.T) {
	env := newTestEnv()
	r := gin.New()
	r.Use(middleware.ErrorHandler(), asUser("parent-1", middleware.RoleParent))
	r.POST("/send-task-reminder/:taskId", env.server.SendTaskReminder)
	r.POST("/notify-new-task/:taskId", env.server.NotifyNewTask)
	r.POST("/notify-task-completed/:taskId", env.server.NotifyTaskCompleted)

	w := doJSON(r, http.MethodPost, "/send-task-reminder/task-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"task-1"}, env.tasks.reminded)

	w = doJSON(r, http.MethodPost, "/send-task-reminder/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPost, "/notify-new-task/task-2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"task-2"}, env.tasks.newTask)

	w = doJSON(r, http.MethodPost, "/notify-task-completed/task-3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"task-3"}, env.tasks.completed)
}

func TestWhatsAppStatusAndQR(t *testing.T) {
	env := newTestEnv()
	r := gin.New()
	r.GET("/whatsapp/status", env.server.WhatsAppStatus)
	r.GET("/whatsapp/qr", env.server.WhatsAppQR)

	w := doJSON(r, http.MethodGet, "/whatsapp/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var status map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "ready", status["state"])
	assert.Equal(t, true, status["ready"])

	// Paired session has no QR to show.
	w = doJSON(r, http.MethodGet, "/whatsapp/qr", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWhatsAppQRWhilePairing(t *testing.T) {
	server := NewServer(ServerDeps{
		Alerts:   &fakeAlerts{},
		WAStatus: &fakeSessionStatus{state: notify.StateInitializing, qr: "pairing-code"},
	})
	r := gin.New()
	r.GET("/whatsapp/qr", server.WhatsAppQR)

	w := doJSON(r, http.MethodGet, "/whatsapp/qr", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "pairing-code", body["qr"])
}

func TestReadinessReportsChannels(t *testing.T) {
	env := newTestEnv()
	r := gin.New()
	r.GET("/health/ready", env.server.Readiness)

	w := doJSON(r, http.MethodGet, "/health/ready", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Status string `json:"status"`
		Checks struct {
			Channels map[string]bool `json:"channels"`
		} `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.False(t, body.Checks.Channels["whatsapp"])
}
