package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/auth"
	"bookshelf/internal/model"
)

const testSecret = "test-secret"

func newContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func jwtMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(JWTConfig([]byte(testSecret)))
}

func TestJWT_MissingToken(t *testing.T) {
	ctx, _ := newContext("")
	called := false
	err := jwtMiddleware()(func(echo.Context) error { called = true; return nil })(ctx)

	require.Error(t, err)
	require.False(t, called)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestJWT_InvalidToken(t *testing.T) {
	ctx, _ := newContext("Bearer not-a-real-token")
	called := false
	err := jwtMiddleware()(func(echo.Context) error { called = true; return nil })(ctx)

	require.Error(t, err)
	require.False(t, called)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusForbidden, he.Code)
}

func TestJWT_WrongSecret(t *testing.T) {
	token, err := auth.NewJWTService("other-secret").GenerateToken(1, model.RoleUser)
	require.NoError(t, err)

	ctx, _ := newContext("Bearer " + token)
	err = jwtMiddleware()(func(echo.Context) error { return nil })(ctx)

	require.Error(t, err)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusForbidden, he.Code)
}

func TestJWT_ValidTokenAttachesPrincipal(t *testing.T) {
	token, err := auth.NewJWTService(testSecret).GenerateToken(2, model.RoleUser)
	require.NoError(t, err)

	ctx, rec := newContext("Bearer " + token)
	called := false
	err = jwtMiddleware()(func(c echo.Context) error {
		called = true
		claims, err := Principal(c)
		require.NoError(t, err)
		require.Equal(t, uint(2), claims.UserID)
		require.Equal(t, model.RoleUser, claims.Role)
		return c.String(http.StatusOK, "ok")
	})(ctx)

	require.NoError(t, err)
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireLibrarian(t *testing.T) {
	handler := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	chain := jwtMiddleware()(RequireLibrarian(handler))

	// user role is rejected
	token, err := auth.NewJWTService(testSecret).GenerateToken(2, model.RoleUser)
	require.NoError(t, err)
	ctx, _ := newContext("Bearer " + token)
	err = chain(ctx)
	require.Error(t, err)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusForbidden, he.Code)

	// librarian passes
	token, err = auth.NewJWTService(testSecret).GenerateToken(3, model.RoleLibrarian)
	require.NoError(t, err)
	ctx, rec := newContext("Bearer " + token)
	require.NoError(t, chain(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPrincipal_MissingToken(t *testing.T) {
	ctx, _ := newContext("")
	_, err := Principal(ctx)
	require.Error(t, err)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusUnauthorized, he.Code)
}
