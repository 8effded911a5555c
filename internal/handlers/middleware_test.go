package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"todoapi/internal/token"
)

// minimal router wiring only the middleware + a protected endpoint
func newMiddlewareOnlyRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(nil, testTokens, nil, nil)
	r.GET("/secure", h.identityMiddleware, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "userId": callerID(c)})
	})
	return r
}

func TestIdentityMiddleware_Errors(t *testing.T) {
	expired, err := token.NewService("handler-test-secret", -time.Minute).Issue("u-1", "a@b.c")
	if err != nil {
		t.Fatalf("issue expired token: %v", err)
	}
	otherKey, err := token.NewService("different-secret", time.Hour).Issue("u-1", "a@b.c")
	if err != nil {
		t.Fatalf("issue foreign token: %v", err)
	}

	cases := []struct {
		name   string
		header string
		errMsg string
	}{
		{name: "missing header", header: "", errMsg: "missing bearer token"},
		{name: "wrong scheme", header: "Token abc", errMsg: "missing bearer token"},
		{name: "lowercase scheme", header: "bearer abc", errMsg: "missing bearer token"},
		{name: "empty remainder", header: "Bearer ", errMsg: "missing bearer token"},
		{name: "garbage token", header: "Bearer not.a.jwt", errMsg: "invalid or expired token"},
		{name: "expired token", header: "Bearer " + expired, errMsg: "invalid or expired token"},
		{name: "wrong signing key", header: "Bearer " + otherKey, errMsg: "invalid or expired token"},
	}

	r := newMiddlewareOnlyRouter()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d (%s)", w.Code, w.Body.String())
			}
			var m map[string]any
			_ = json.Unmarshal(w.Body.Bytes(), &m)
			if m["success"] != false {
				t.Fatalf("expected success=false envelope, got %s", w.Body.String())
			}
			if m["error"] != tc.errMsg {
				t.Fatalf("expected error %q, got %v", tc.errMsg, m["error"])
			}
		})
	}
}

func TestIdentityMiddleware_Success(t *testing.T) {
	r := newMiddlewareOnlyRouter()

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", bearerFor(t, "u-42", "alice@example.com"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["userId"] != "u-42" {
		t.Fatalf("expected verified subject in context, got %v", m["userId"])
	}
}
