package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "bookshelf/internal/errors"
	"bookshelf/internal/model"
	"bookshelf/internal/repository"
)

// ReservationService handles reserving and cancelling books.
type ReservationService interface {
	Create(ctx context.Context, userID, bookID uint, dueDate *time.Time) (*model.Reservation, error)
	List(ctx context.Context, userID uint, role string) ([]model.ReservationDetail, error)
	Cancel(ctx context.Context, id, callerID uint, callerRole string) error
}

type reservationService struct {
	reservationRepo repository.ReservationRepository
}

// NewReservationService creates a new reservation service.
func NewReservationService(reservationRepo repository.ReservationRepository) ReservationService {
	return &reservationService{reservationRepo: reservationRepo}
}

// Create reserves a book for a user. The existence check, availability check,
// insert and availability flip run inside one transaction so two concurrent
// requests for the same book cannot both succeed.
func (s *reservationService) Create(ctx context.Context, userID, bookID uint, dueDate *time.Time) (*model.Reservation, error) {
	reservation := &model.Reservation{
		UserID:          userID,
		BookID:          bookID,
		ReservationDate: time.Now(),
		DueDate:         dueDate,
	}

	err := s.reservationRepo.WithTransaction(ctx, func(ctx context.Context, books repository.BookRepository, reservations repository.ReservationRepository) error {
		book, err := books.FindByID(ctx, bookID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrBookNotFound
			}
			return fmt.Errorf("find book: %w", err)
		}

		if !book.Available {
			return apperrors.ErrBookUnavailable
		}

		if err := reservations.Create(ctx, reservation); err != nil {
			return fmt.Errorf("create reservation: %w", err)
		}

		if err := books.SetAvailability(ctx, bookID, false); err != nil {
			return fmt.Errorf("mark book unavailable: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return reservation, nil
}

// List returns reservations shaped by role: librarians see every reservation
// with the reserving user's name, everyone else sees only their own rows.
func (s *reservationService) List(ctx context.Context, userID uint, role string) ([]model.ReservationDetail, error) {
	if role == model.RoleLibrarian {
		rows, err := s.reservationRepo.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("list reservations: %w", err)
		}
		return rows, nil
	}

	rows, err := s.reservationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return rows, nil
}

// Cancel deletes a reservation and frees the book again. Only the owning user
// or a librarian may cancel.
func (s *reservationService) Cancel(ctx context.Context, id, callerID uint, callerRole string) error {
	return s.reservationRepo.WithTransaction(ctx, func(ctx context.Context, books repository.BookRepository, reservations repository.ReservationRepository) error {
		reservation, err := reservations.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrReservationNotFound
			}
			return fmt.Errorf("find reservation: %w", err)
		}

		if callerRole != model.RoleLibrarian && reservation.UserID != callerID {
			return apperrors.ErrNotOwner
		}

		if err := reservations.DeleteByID(ctx, id); err != nil {
			return fmt.Errorf("delete reservation: %w", err)
		}

		if err := books.SetAvailability(ctx, reservation.BookID, true); err != nil {
			return fmt.Errorf("mark book available: %w", err)
		}

		return nil
	})
}
