package repository

import (
	"context"

	"gorm.io/gorm"

	"bookshelf/internal/model"
)

// ReservationRepository defines reservation persistence operations.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *model.Reservation) error
	FindByID(ctx context.Context, id uint) (*model.Reservation, error)
	ListAll(ctx context.Context) ([]model.ReservationDetail, error)
	ListByUser(ctx context.Context, userID uint) ([]model.ReservationDetail, error)
	DeleteByID(ctx context.Context, id uint) error
	// WithTransaction runs fn against transaction-scoped book and reservation
	// repositories; the reservation check-then-write sequence depends on it.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, books BookRepository, reservations ReservationRepository) error) error
}

type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository builds a GORM-backed repository.
func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *model.Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

func (r *reservationRepository) FindByID(ctx context.Context, id uint) (*model.Reservation, error) {
	var reservation model.Reservation
	if err := r.db.WithContext(ctx).First(&reservation, id).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) ListAll(ctx context.Context) ([]model.ReservationDetail, error) {
	var rows []model.ReservationDetail
	err := r.db.WithContext(ctx).
		Table("reservations").
		Select("reservations.id, users.name AS user_name, books.title AS book_title, reservations.reservation_date, reservations.due_date").
		Joins("JOIN users ON reservations.user_id = users.id").
		Joins("JOIN books ON reservations.book_id = books.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reservationRepository) ListByUser(ctx context.Context, userID uint) ([]model.ReservationDetail, error) {
	var rows []model.ReservationDetail
	err := r.db.WithContext(ctx).
		Table("reservations").
		Select("reservations.id, books.title AS book_title, reservations.reservation_date, reservations.due_date").
		Joins("JOIN books ON reservations.book_id = books.id").
		Where("reservations.user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reservationRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Reservation{}, id).Error
}

func (r *reservationRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, books BookRepository, reservations ReservationRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &bookRepository{db: tx}, &reservationRepository{db: tx})
	})
}
