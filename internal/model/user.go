package model

import "time"

// Role identifies what a user is allowed to do. It is a closed set:
// every authorization decision must match exhaustively on it so an
// unknown role is always denied.
type Role string

const (
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

// User represents a registered account: a plain user, a restaurant
// owner, or an admin.
type User struct {
	ID           uint      `json:"uid" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         Role      `json:"user_type" gorm:"type:varchar(20);not null;default:'user';index"`
	Status       string    `json:"status" gorm:"size:50"` // active, pending (owners awaiting approval)
	Photo        string    `json:"photo" gorm:"size:512"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
