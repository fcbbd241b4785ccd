package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tora-app.io/tora/internal/api/middleware"
	"tora-app.io/tora/internal/notify"
	apperrors "tora-app.io/tora/internal/pkg/errors"
)

type registerTokenRequest struct {
	Token      string `json:"token" binding:"required"`
	DeviceType string `json:"deviceType" binding:"required"`
}

// RegisterToken handles POST /notifications/register-token.
func (s *Server) RegisterToken(c *gin.Context) {
	var req registerTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}

	userID := middleware.GetUserID(c.Request.Context())
	token, err := s.tokens.Register(c.Request.Context(), userID, req.Token, req.DeviceType)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         token.ID,
		"deviceType": string(token.DeviceType),
		"active":     token.Active,
	})
}

// UnregisterToken handles DELETE /notifications/unregister-token/:token.
func (s *Server) UnregisterToken(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())
	if err := s.tokens.Unregister(c.Request.Context(), userID, c.Param("token")); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unregistered": true})
}

// UnregisterAllTokens handles DELETE /notifications/tokens, used on
// logout from all devices.
func (s *Server) UnregisterAllTokens(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())
	count, err := s.tokens.UnregisterAll(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unregistered": count})
}

// SendTaskReminder handles POST /notifications/send-task-reminder/:taskId.
func (s *Server) SendTaskReminder(c *gin.Context) {
	res, err := s.tasks.SendReminder(c.Request.Context(), c.Param("taskId"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// NotifyNewTask handles POST /notifications/notify-new-task/:taskId.
// Called by the parent after assigning a task.
func (s *Server) NotifyNewTask(c *gin.Context) {
	res, err := s.tasks.NotifyNewTask(c.Request.Context(), c.Param("taskId"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// NotifyTaskCompleted handles POST /notifications/notify-task-completed/:taskId.
// Called by the child on completion; the push goes to the parent.
func (s *Server) NotifyTaskCompleted(c *gin.Context) {
	res, err := s.tasks.NotifyTaskCompleted(c.Request.Context(), c.Param("taskId"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type directPushRequest struct {
	ChildID string `json:"childId" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

// SendToChild handles POST /notifications/send-to-child: a parent pushes
// a check-in prompt to their child's devices (mirrored to their own).
func (s *Server) SendToChild(c *gin.Context) {
	var req directPushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}

	ctx := c.Request.Context()
	child, err := s.directory.Child(ctx, req.ChildID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if child.ParentID != middleware.GetUserID(ctx) {
		_ = c.Error(apperrors.Forbidden(apperrors.CodeForbidden, "child belongs to another parent"))
		return
	}

	res := s.pusher.SendToChild(ctx, child.ID, child.ParentID, req.Title, req.Body,
		notify.CheckinPayload{ChildID: child.ID})
	c.JSON(http.StatusOK, res)
}

type parentPushRequest struct {
	ChildID string `json:"childId" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

// SendToParent handles POST /notifications/send-to-parent: pushes a
// progress update about a child to the owning parent's devices.
func (s *Server) SendToParent(c *gin.Context) {
	var req parentPushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}

	ctx := c.Request.Context()
	child, err := s.directory.Child(ctx, req.ChildID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if child.ParentID == "" {
		_ = c.Error(apperrors.NotFound(apperrors.CodeChildNotFound, "child has no parent"))
		return
	}
	if child.ParentID != middleware.GetUserID(ctx) {
		_ = c.Error(apperrors.Forbidden(apperrors.CodeForbidden, "child belongs to another parent"))
		return
	}

	res := s.pusher.SendToUser(ctx, child.ParentID, req.Title, req.Body,
		notify.ProgressPayload{ChildID: child.ID})
	c.JSON(http.StatusOK, res)
}
