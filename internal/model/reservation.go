package model

import "time"

// Reservation links a user to a book they have claimed.
type Reservation struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	UserID          uint       `json:"user_id" gorm:"not null;index"`
	BookID          uint       `json:"book_id" gorm:"not null;index"`
	ReservationDate time.Time  `json:"reservation_date" gorm:"not null"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Book Book `json:"-" gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
}

// ReservationDetail is a reservation row joined with the referenced user and
// book, shaped for listing. UserName is left empty for non-librarian callers.
type ReservationDetail struct {
	ID              uint       `json:"id"`
	UserName        string     `json:"user,omitempty"`
	BookTitle       string     `json:"book"`
	ReservationDate time.Time  `json:"reservation_date"`
	DueDate         *time.Time `json:"due_date,omitempty"`
}
