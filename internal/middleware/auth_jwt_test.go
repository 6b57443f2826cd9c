package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"app/internal/config"
	"app/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testJWTSecret = "test-jwt-secret"

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	var key interface{} = []byte(secret)
	if method == jwt.SigningMethodNone {
		key = jwt.UnsafeAllowNoneSignatureType
	}
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func callProtected(authz string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	cfg := config.Config{JWTSecret: testJWTSecret}

	var captured echo.Context
	e.GET("/protected", func(c echo.Context) error {
		captured = c
		return c.NoContent(http.StatusOK)
	}, middleware.AuthJWT(cfg))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec, captured
}

func TestAuthJWT_ValidTokenSetsIdentity(t *testing.T) {
	token := signToken(t, testJWTSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  int64(7),
		"role": "buyer",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	rec, c := callProtected("Bearer " + token)

	assert.Equal(t, http.StatusOK, rec.Code)
	if assert.NotNil(t, c) {
		assert.Equal(t, int64(7), c.Get(middleware.CtxUserIDKey))
		assert.Equal(t, "buyer", c.Get(middleware.CtxUserRoleKey))
	}
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	rec, _ := callProtected("")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Not authenticated"}`, rec.Body.String())
}

func TestAuthJWT_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  int64(7),
		"role": "buyer",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	rec, _ := callProtected("Bearer " + token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_ExpiredToken(t *testing.T) {
	token := signToken(t, testJWTSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  int64(7),
		"role": "buyer",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})

	rec, _ := callProtected("Bearer " + token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_NoneAlgorithmRejected(t *testing.T) {
	token := signToken(t, testJWTSecret, jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  int64(7),
		"role": "buyer",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	rec, _ := callProtected("Bearer " + token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_MalformedHeader(t *testing.T) {
	rec, _ := callProtected("Token abc")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
