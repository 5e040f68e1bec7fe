package domain

import "time"

type AccountKind string

const (
	AccountLocal  AccountKind = "local"
	AccountGoogle AccountKind = "google"
)

// User is an account record. The same email may exist once per account kind:
// a password account and a Google account are distinct rows.
type User struct {
	ID           int64       `json:"_id" gorm:"primaryKey"`
	Email        string      `json:"email" gorm:"uniqueIndex:idx_users_email_kind;not null"`
	AccountKind  AccountKind `json:"accountKind" gorm:"uniqueIndex:idx_users_email_kind;not null;default:local"`
	Name         string      `json:"name,omitempty"`
	PasswordHash string      `json:"-" gorm:"column:password_hash"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
