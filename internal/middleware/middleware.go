package middleware

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"bookshelf/internal/auth"
	apperrors "bookshelf/internal/errors"
	"bookshelf/internal/model"
)

// ContextUserKey is the echo context key under which the JWT middleware
// stores the parsed token.
const ContextUserKey = "user"

// JWTConfig builds the echo-jwt configuration for the secured route group.
// A request without a token gets 401; a request whose token fails parsing or
// signature validation gets 403.
func JWTConfig(secret []byte) echojwt.Config {
	return echojwt.Config{
		ContextKey:  ContextUserKey,
		SigningKey:  secret,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var tokenErr *echojwt.TokenError
			if errors.As(err, &tokenErr) {
				he := apperrors.MapErrorToHTTP(apperrors.ErrInvalidToken)
				return echo.NewHTTPError(he.StatusCode, he.Message)
			}
			he := apperrors.MapErrorToHTTP(apperrors.ErrMissingToken)
			return echo.NewHTTPError(he.StatusCode, he.Message)
		},
	}
}

// Principal returns the authenticated {id, role} claims attached by the JWT
// middleware.
func Principal(c echo.Context) (*auth.Claims, error) {
	token, ok := c.Get(ContextUserKey).(*jwt.Token)
	if !ok {
		he := apperrors.MapErrorToHTTP(apperrors.ErrMissingToken)
		return nil, echo.NewHTTPError(he.StatusCode, he.Message)
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		he := apperrors.MapErrorToHTTP(apperrors.ErrInvalidToken)
		return nil, echo.NewHTTPError(he.StatusCode, he.Message)
	}
	return claims, nil
}

// RequireLibrarian rejects requests whose principal does not hold the
// librarian role.
func RequireLibrarian(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := Principal(c)
		if err != nil {
			return err
		}
		if claims.Role != model.RoleLibrarian {
			he := apperrors.MapErrorToHTTP(apperrors.ErrLibrarianRequired)
			return echo.NewHTTPError(he.StatusCode, he.Message)
		}
		return next(c)
	}
}
