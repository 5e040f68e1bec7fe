package domain

import "time"

type Comment struct {
	ID        int64     `json:"_id" gorm:"primaryKey"`
	Message   string    `json:"message" gorm:"not null"`
	Owner     int64     `json:"owner" gorm:"index;not null"`
	PostID    int64     `json:"postId" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
