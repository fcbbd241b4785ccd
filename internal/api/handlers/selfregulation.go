package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tora-app.io/tora/ent"
	"tora-app.io/tora/internal/alert"
	"tora-app.io/tora/internal/api/middleware"
	apperrors "tora-app.io/tora/internal/pkg/errors"
)

// activateRequest is the body of POST /self-regulation/activate. The
// child identity comes from the JWT, never from the body.
type activateRequest struct {
	Level               string `json:"level" binding:"required"`
	Emotion             string `json:"emotion"`
	Trigger             string `json:"trigger"`
	StrategyUsed        string `json:"strategyUsed"`
	Notes               string `json:"notes"`
	AssistanceRequested bool   `json:"assistanceRequested"`
}

type resolveRequest struct {
	Notes string `json:"notes"`
}

// eventResponse is the JSON shape of a self-regulation event.
type eventResponse struct {
	ID                  string     `json:"id"`
	ChildID             string     `json:"childId"`
	Level               string     `json:"level"`
	Emotion             string     `json:"emotion,omitempty"`
	Trigger             string     `json:"trigger,omitempty"`
	StrategyUsed        string     `json:"strategyUsed,omitempty"`
	Notes               string     `json:"notes,omitempty"`
	AssistanceRequested bool       `json:"assistanceRequested"`
	Resolved            bool       `json:"resolved"`
	ResolvedAt          *time.Time `json:"resolvedAt,omitempty"`
	ResolvedBy          string     `json:"resolvedBy,omitempty"`
	ResolutionNotes     string     `json:"resolutionNotes,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

func eventToAPI(e *ent.SelfRegulationEvent) eventResponse {
	return eventResponse{
		ID:                  e.ID,
		ChildID:             e.ChildID,
		Level:               string(e.Level),
		Emotion:             e.Emotion,
		Trigger:             e.Trigger,
		StrategyUsed:        e.StrategyUsed,
		Notes:               e.Notes,
		AssistanceRequested: e.AssistanceRequested,
		Resolved:            e.Resolved,
		ResolvedAt:          e.ResolvedAt,
		ResolvedBy:          e.ResolvedBy,
		ResolutionNotes:     e.ResolutionNotes,
		CreatedAt:           e.CreatedAt,
	}
}

// Activate handles POST /self-regulation/activate.
func (s *Server) Activate(c *gin.Context) {
	var req activateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}

	childID := middleware.GetUserID(c.Request.Context())
	event, err := s.alerts.Activate(c.Request.Context(), alert.ActivationInput{
		ChildID:             childID,
		Level:               req.Level,
		Emotion:             req.Emotion,
		Trigger:             req.Trigger,
		StrategyUsed:        req.StrategyUsed,
		Notes:               req.Notes,
		AssistanceRequested: req.AssistanceRequested,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, eventToAPI(event))
}

// ResolveEvent handles PUT /self-regulation/resolve/:id.
func (s *Server) ResolveEvent(c *gin.Context) {
	// The resolve body is optional; an empty body means no notes.
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}

	resolvedBy := middleware.GetUserID(c.Request.Context())
	event, err := s.alerts.Resolve(c.Request.Context(), c.Param("id"), resolvedBy, req.Notes)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, eventToAPI(event))
}

// ChildHistory handles GET /self-regulation/history/:childId for parents.
// Parents can only read their own children's history.
func (s *Server) ChildHistory(c *gin.Context) {
	ctx := c.Request.Context()
	childID := c.Param("childId")

	child, err := s.directory.Child(ctx, childID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if child.ParentID != middleware.GetUserID(ctx) {
		_ = c.Error(apperrors.Forbidden(apperrors.CodeForbidden, "child belongs to another parent"))
		return
	}

	s.history(c, childID)
}

// UnresolvedEvents handles GET /self-regulation/unresolved. Returns the
// open events across all of the parent's children for the dashboard.
func (s *Server) UnresolvedEvents(c *gin.Context) {
	parentID := middleware.GetUserID(c.Request.Context())
	events, err := s.alerts.Unresolved(c.Request.Context(), parentID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	items := make([]eventResponse, 0, len(events))
	for _, e := range events {
		items = append(items, eventToAPI(e))
	}
	c.JSON(http.StatusOK, gin.H{"events": items, "count": len(items)})
}

// MyHistory handles GET /self-regulation/my-history for children.
func (s *Server) MyHistory(c *gin.Context) {
	s.history(c, middleware.GetUserID(c.Request.Context()))
}

func (s *Server) history(c *gin.Context, childID string) {
	days := 30
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "days must be a positive integer"))
			return
		}
		days = parsed
	}

	events, err := s.alerts.History(c.Request.Context(), childID, days)
	if err != nil {
		_ = c.Error(err)
		return
	}

	items := make([]eventResponse, 0, len(events))
	for _, e := range events {
		items = append(items, eventToAPI(e))
	}
	c.JSON(http.StatusOK, gin.H{"events": items, "days": days})
}
