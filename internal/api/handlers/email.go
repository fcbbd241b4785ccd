package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "tora-app.io/tora/internal/pkg/errors"
)

type testEmailRequest struct {
	To string `json:"to" binding:"required,email"`
}

// TestEmail handles POST /email/test, an operator connectivity check.
func (s *Server) TestEmail(c *gin.Context) {
	var req testEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}

	if err := s.emailer.SendTest(c.Request.Context(), req.To); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": true})
}
