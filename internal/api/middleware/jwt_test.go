package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func testRouter(signingKey []byte, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuth(signingKey))
	group := r.Group("/")
	if role != "" {
		group.Use(RequireRole(role))
	}
	group.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": GetUserID(c.Request.Context()),
			"role":    GetRole(c.Request.Context()),
		})
	})
	return r
}

func TestJWTAuth(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	cfg := JWTConfig{SigningKey: key, Issuer: "tora", ExpiresIn: time.Hour}

	token, _, err := GenerateToken(cfg, "child-1", "Ana", RoleChild)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "Token " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized},
	}

	r := testRouter(key, "")
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tc.wantStatus)
			}
		})
	}
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	cfg := JWTConfig{SigningKey: key, Issuer: "tora", ExpiresIn: -time.Minute}

	token, _, err := GenerateToken(cfg, "child-1", "Ana", RoleChild)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	r := testRouter(key, "")
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestRequireRole(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	cfg := JWTConfig{SigningKey: key, Issuer: "tora", ExpiresIn: time.Hour}

	childToken, _, _ := GenerateToken(cfg, "child-1", "Ana", RoleChild)
	parentToken, _, _ := GenerateToken(cfg, "parent-1", "Maria", RoleParent)

	r := testRouter(key, RoleParent)

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{"parent allowed", parentToken, http.StatusOK},
		{"child forbidden", childToken, http.StatusForbidden},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set("Authorization", "Bearer "+tc.token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tc.wantStatus)
			}
		})
	}
}
