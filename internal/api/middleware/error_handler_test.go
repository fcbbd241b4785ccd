package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "tora-app.io/tora/internal/pkg/errors"
	"tora-app.io/tora/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "json")
	m.Run()
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "app error maps status and code",
			err:        apperrors.ErrEventNotFoundf("e1"),
			wantStatus: http.StatusNotFound,
			wantCode:   "EVENT_NOT_FOUND",
		},
		{
			name:       "conflict app error",
			err:        apperrors.ErrEventAlreadyResolvedf("e1"),
			wantStatus: http.StatusConflict,
			wantCode:   "EVENT_ALREADY_RESOLVED",
		},
		{
			name:       "plain error falls back to 500",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler())
			r.GET("/fail", func(c *gin.Context) {
				_ = c.Error(tc.err)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tc.wantStatus)
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal body: %v", err)
			}
			if body["code"] != tc.wantCode {
				t.Fatalf("code = %q, want %q", body["code"], tc.wantCode)
			}
		})
	}
}
