package model

import "time"

// Roles a user can hold. Anything other than RoleLibrarian is unprivileged.
const (
	RoleUser      = "user"
	RoleLibrarian = "librarian"
)

// User represents a registered library member or librarian.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string    `json:"role" gorm:"size:50;not null;default:'user'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsLibrarian reports whether the user holds the privileged role.
func (u *User) IsLibrarian() bool {
	return u.Role == RoleLibrarian
}
