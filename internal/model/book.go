package model

import "time"

// Book represents a catalog entry managed by librarians.
type Book struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Title           string    `json:"title" gorm:"size:255;not null"`
	Author          string    `json:"author" gorm:"size:255;not null"`
	ISBN            *string   `json:"isbn,omitempty" gorm:"size:32;uniqueIndex"`
	Available       bool      `json:"available" gorm:"not null;default:true"`
	PublicationYear *int      `json:"publication_year,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
