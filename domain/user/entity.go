package user

import (
	"time"
)

// User represents a registered account. Todos reference a user by ID but
// the identity module fully owns this record.
type User struct {
	ID           string `gorm:"primaryKey;type:text"`
	Username     string `gorm:"uniqueIndex;not null;type:text"`
	PasswordHash string `gorm:"not null;type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for the User entity.
func (User) TableName() string {
	return "users"
}

// Identity is the authenticated user attached to a request.
type Identity struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}
