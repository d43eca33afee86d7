package models

import "time"

// User represents a registered account. Accounts are created through
// registration only; the service never updates or deletes them.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Username     string    `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	CreatedAt    time.Time `json:"createdAt"`

	Products []Product `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
