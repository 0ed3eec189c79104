package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"AgileMoodGo/utils"

	"github.com/gin-gonic/gin"
)

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": c.GetString("uid")})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	utils.InitJWT("test-secret")
	r := authTestRouter()

	token, err := utils.GenerateToken("user-123")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
		{"valid bearer token", "Bearer " + token, http.StatusOK},
		{"valid bare token", token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestInternalAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	internalRouter := func(token string) *gin.Engine {
		r := gin.New()
		r.GET("/internal", InternalAuthMiddleware(token), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}

	tests := []struct {
		name       string
		configured string
		header     string
		wantStatus int
	}{
		{"missing header", "operator-token", "", http.StatusForbidden},
		{"wrong token", "operator-token", "nope", http.StatusForbidden},
		{"valid token", "operator-token", "operator-token", http.StatusOK},
		{"no token configured rejects everything", "", "", http.StatusForbidden},
		{"no token configured rejects even empty match", "", "anything", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/internal", nil)
			if tt.header != "" {
				req.Header.Set("X-Internal-Auth", tt.header)
			}
			w := httptest.NewRecorder()
			internalRouter(tt.configured).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
