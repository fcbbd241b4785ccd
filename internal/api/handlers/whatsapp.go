package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tora-app.io/tora/internal/notify"
)

// WhatsAppStatus handles GET /whatsapp/status.
func (s *Server) WhatsAppStatus(c *gin.Context) {
	state := notify.StateFailed
	if s.waStatus != nil {
		state = s.waStatus.State()
	}
	c.JSON(http.StatusOK, gin.H{
		"state": state.String(),
		"ready": state == notify.StateReady,
	})
}

// WhatsAppQR handles GET /whatsapp/qr. Returns the current pairing QR
// payload, or 404 once the session is paired or before a code exists.
func (s *Server) WhatsAppQR(c *gin.Context) {
	if s.waStatus == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "whatsapp channel disabled"})
		return
	}
	code := s.waStatus.LastQR()
	if code == "" {
		c.JSON(http.StatusNotFound, gin.H{"message": "no pairing code available"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"qr": code})
}
