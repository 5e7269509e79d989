package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Saubhagya1707/crying-tailor/internal/shared/auth"
)

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth(DefaultPublicPrefixes...))
	handler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserIDFromContext(c), "email": UserEmailFromContext(c)})
	}
	router.GET("/api/v1/profile", handler)
	router.GET("/api/v1/health", handler)
	router.POST("/api/v1/auth/login", handler)
	router.OPTIONS("/api/v1/documents/:id", handler)
	return router
}

func TestAuthAllowsOptionsWithoutIdentity(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/documents/abc", nil)
	resp := httptest.NewRecorder()
	authRouter().ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
}

func TestAuthPublicPaths(t *testing.T) {
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/health"},
		{http.MethodPost, "/api/v1/auth/login"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		resp := httptest.NewRecorder()
		authRouter().ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s %s: expected 200, got %d", tc.method, tc.path, resp.Code)
		}
	}
}

func TestAuthRejectsMissingAndInvalidTokens(t *testing.T) {
	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer not-a-jwt"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp := httptest.NewRecorder()
		authRouter().ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, resp.Code)
		}
	}
}

func TestAuthSetsIdentityFromToken(t *testing.T) {
	token, err := auth.SignJWT(auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
		Email:            "jane@example.com",
	})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	authRouter().ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body := resp.Body.String(); body != `{"email":"jane@example.com","userId":"user-1"}` {
		t.Fatalf("unexpected body %s", body)
	}
}
