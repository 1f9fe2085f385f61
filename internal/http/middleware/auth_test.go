// README: Tests for the JWT auth middleware.
package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"wayfare/internal/http/middleware"
	"wayfare/internal/modules/account"
)

func newTestRouter(issuer *account.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequireAuth(issuer))
	r.GET("/test", func(c *gin.Context) {
		id, _ := middleware.UserID(c)
		name, _ := middleware.Username(c)
		c.JSON(http.StatusOK, gin.H{"userId": id, "username": name})
	})
	return r
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	r := newTestRouter(account.NewTokenIssuer("test-secret"))
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_InvalidBearerPrefix(t *testing.T) {
	r := newTestRouter(account.NewTokenIssuer("test-secret"))
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Token sometoken")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	other, err := account.NewTokenIssuer("other-secret").Issue(7, "mallory")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	r := newTestRouter(account.NewTokenIssuer("test-secret"))
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+other)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_ValidToken_IdentityPopulated(t *testing.T) {
	issuer := account.NewTokenIssuer("test-secret")
	token, err := issuer.Issue(42, "alex")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	r := newTestRouter(issuer)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "42") || !strings.Contains(body, "alex") {
		t.Errorf("identity missing from body: %s", body)
	}
}
