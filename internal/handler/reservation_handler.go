package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "bookshelf/internal/errors"
	"bookshelf/internal/middleware"
	"bookshelf/internal/service"
)

// ReservationHandler handles reservation endpoints.
type ReservationHandler struct {
	reservationService service.ReservationService
}

// NewReservationHandler creates a new reservation handler.
func NewReservationHandler(reservationService service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// CreateReservationRequest represents a reservation request.
type CreateReservationRequest struct {
	BookID  uint       `json:"bookId" validate:"required"`
	DueDate *time.Time `json:"due_date,omitempty"`
}

// CreateReservationResponse represents a successful reservation.
type CreateReservationResponse struct {
	Message       string `json:"message"`
	ReservationID uint   `json:"reservationId"`
}

// CancelReservationResponse represents a successful cancellation.
type CancelReservationResponse struct {
	Message string `json:"message"`
}

// CreateReservation godoc
// @Summary Reserve a book
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateReservationRequest true "Reservation data"
// @Success 201 {object} CreateReservationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	claims, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	var req CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "bookId required")
	}

	reservation, err := h.reservationService.Create(c.Request().Context(), claims.UserID, req.BookID, req.DueDate)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	return c.JSON(http.StatusCreated, CreateReservationResponse{
		Message:       "Reservation created",
		ReservationID: reservation.ID,
	})
}

// ListReservations godoc
// @Summary List reservations
// @Description Librarians see every reservation with the reserving user's name; other users see only their own.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ReservationDetail
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c echo.Context) error {
	claims, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	rows, err := h.reservationService.List(c.Request().Context(), claims.UserID, claims.Role)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	return c.JSON(http.StatusOK, rows)
}

// CancelReservation godoc
// @Summary Cancel a reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} CancelReservationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) CancelReservation(c echo.Context) error {
	claims, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid reservation id")
	}

	if err := h.reservationService.Cancel(c.Request().Context(), id, claims.UserID, claims.Role); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	return c.JSON(http.StatusOK, CancelReservationResponse{
		Message: "Reservation cancelled",
	})
}
