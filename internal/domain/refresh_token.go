package domain

import "time"

// RefreshToken is one entry of a user's refresh-token allow-list.
//
// Security notes:
// - Presence of a row is the sole authority for refresh-token liveness.
//   A signed, unexpired token with no matching row is treated as replayed.
// - Rotation removes the redeemed row and inserts the replacement; a second
//   redemption of the same token finds no row and revokes the whole set.
type RefreshToken struct {
	ID int64 `json:"id" gorm:"primaryKey"`

	UserID int64 `json:"user_id" gorm:"index;not null"`
	User   User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	Token string `json:"-" gorm:"size:512;uniqueIndex;not null"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index;not null"`
}

func (t *RefreshToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
