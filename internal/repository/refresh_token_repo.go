package repository

import (
	"context"
	"time"

	"postboard/internal/domain"

	"gorm.io/gorm"
)

// RefreshTokenRepository maintains the per-user refresh-token allow-list.
type RefreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Append(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	return r.db.WithContext(ctx).Create(&domain.RefreshToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
	}).Error
}

// Remove deletes the presented token if it is on record for the user.
// The conditional DELETE is the atomic remove-if-present step of rotation:
// of two concurrent redemptions of one token, exactly one sees a row.
func (r *RefreshTokenRepository) Remove(ctx context.Context, userID int64, token string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND token = ?", userID, token).
		Delete(&domain.RefreshToken{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// RemoveAllForUser revokes every session of the user. Used as the breach
// response when a signature-valid token is not on record.
func (r *RefreshTokenRepository) RemoveAllForUser(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&domain.RefreshToken{}).Error
}

func (r *RefreshTokenRepository) CountForUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.RefreshToken{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now().UTC()).
		Delete(&domain.RefreshToken{})
	return res.RowsAffected, res.Error
}
