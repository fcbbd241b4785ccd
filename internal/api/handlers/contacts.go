package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tora-app.io/tora/ent"
	"tora-app.io/tora/internal/alert"
	"tora-app.io/tora/internal/api/middleware"
	apperrors "tora-app.io/tora/internal/pkg/errors"
)

type contactRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Relationship  string `json:"relationship"`
	ReceiveAlerts *bool  `json:"receiveAlerts"`
	Priority      *int   `json:"priority"`
}

type contactResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email,omitempty"`
	Relationship  string    `json:"relationship,omitempty"`
	ReceiveAlerts bool      `json:"receiveAlerts"`
	Priority      int       `json:"priority"`
	CreatedAt     time.Time `json:"createdAt"`
}

func contactToAPI(c *ent.EmergencyContact) contactResponse {
	return contactResponse{
		ID:            c.ID,
		Name:          c.Name,
		Phone:         c.Phone,
		Email:         c.Email,
		Relationship:  c.Relationship,
		ReceiveAlerts: c.ReceiveAlerts,
		Priority:      c.Priority,
		CreatedAt:     c.CreatedAt,
	}
}

func (r contactRequest) toInput() alert.ContactInput {
	return alert.ContactInput{
		Name:          r.Name,
		Phone:         r.Phone,
		Email:         r.Email,
		Relationship:  r.Relationship,
		ReceiveAlerts: r.ReceiveAlerts,
		Priority:      r.Priority,
	}
}

// CreateContact handles POST /self-regulation/emergency-contacts.
func (s *Server) CreateContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}

	parentID := middleware.GetUserID(c.Request.Context())
	contact, err := s.contacts.Create(c.Request.Context(), parentID, req.toInput())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, contactToAPI(contact))
}

// ListContacts handles GET /self-regulation/emergency-contacts.
func (s *Server) ListContacts(c *gin.Context) {
	parentID := middleware.GetUserID(c.Request.Context())
	contacts, err := s.contacts.List(c.Request.Context(), parentID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	items := make([]contactResponse, 0, len(contacts))
	for _, contact := range contacts {
		items = append(items, contactToAPI(contact))
	}
	c.JSON(http.StatusOK, gin.H{"contacts": items})
}

// UpdateContact handles PUT /self-regulation/emergency-contacts/:id.
func (s *Server) UpdateContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}

	parentID := middleware.GetUserID(c.Request.Context())
	contact, err := s.contacts.Update(c.Request.Context(), parentID, c.Param("id"), req.toInput())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, contactToAPI(contact))
}

// DeleteContact handles DELETE /self-regulation/emergency-contacts/:id.
func (s *Server) DeleteContact(c *gin.Context) {
	parentID := middleware.GetUserID(c.Request.Context())
	if err := s.contacts.Delete(c.Request.Context(), parentID, c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
