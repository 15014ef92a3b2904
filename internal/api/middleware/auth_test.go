package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"id":    "64a000000000000000000001",
		"email": "user@example.com",
		"role":  "client",
		"exp":   time.Now().Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func invokeAuth(t *testing.T, authHeader string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := Auth(testSecret)(next)(c)
	return c, err
}

func TestAuth_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, time.Hour)

	c, err := invokeAuth(t, "Bearer "+token)
	if err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}
	if got := c.Get(CtxUserID); got != "64a000000000000000000001" {
		t.Fatalf("expected user id in context, got %v", got)
	}
	if got := c.Get(CtxEmail); got != "user@example.com" {
		t.Fatalf("expected email in context, got %v", got)
	}
	if got := c.Get(CtxRole); got != "client" {
		t.Fatalf("expected role in context, got %v", got)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := invokeAuth(t, "")
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuth_WrongScheme(t *testing.T) {
	_, err := invokeAuth(t, "Basic dXNlcjpwYXNz")
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuth_MalformedToken(t *testing.T) {
	_, err := invokeAuth(t, "Bearer not.a.token")
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, -time.Minute)

	_, err := invokeAuth(t, "Bearer "+token)
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuth_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", time.Hour)

	_, err := invokeAuth(t, "Bearer "+token)
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func assertHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != code {
		t.Fatalf("expected status %d, got %d", code, he.Code)
	}
}
