package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"bookshelf/internal/config"
	apperrors "bookshelf/internal/errors"
	"bookshelf/internal/handler"
	"bookshelf/internal/middleware"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	bookHandler *handler.BookHandler,
	reservationHandler *handler.ReservationHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = HTTPErrorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/books", bookHandler.ListBooks)
	api.GET("/books/:id", bookHandler.GetBook)

	// Secured routes (require a valid bearer token)
	secured := api.Group("", echojwt.WithConfig(middleware.JWTConfig([]byte(cfg.JWTSecret))))

	secured.POST("/books", bookHandler.CreateBook, middleware.RequireLibrarian)
	secured.DELETE("/books/:id", bookHandler.DeleteBook, middleware.RequireLibrarian)

	secured.POST("/reservations", reservationHandler.CreateReservation)
	secured.GET("/reservations", reservationHandler.ListReservations)
	secured.DELETE("/reservations/:id", reservationHandler.CancelReservation)
}

// HTTPErrorHandler renders every error as the uniform {success, error}
// envelope and logs it before responding.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "internal server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	c.Logger().Errorf("%s %s -> %d: %s", c.Request().Method, c.Request().URL.Path, code, msg)

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, apperrors.ErrorResponse{Success: false, Error: msg})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
