package repository

import (
	"context"
	"strings"

	"postboard/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = normalizeEmail(u.Email)
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmailAndKind(ctx context.Context, email string, kind domain.AccountKind) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).
		Where("email = ? AND account_kind = ?", normalizeEmail(email), kind).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) ExistsByEmailAndKind(ctx context.Context, email string, kind domain.AccountKind) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("email = ? AND account_kind = ?", normalizeEmail(email), kind).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetOrCreateGoogle provisions a Google account on first sign-in. The insert
// is ON CONFLICT DO NOTHING on (email, account_kind), so two concurrent
// first-time sign-ins race safely: the loser falls through to the re-fetch.
func (r *UserRepository) GetOrCreateGoogle(ctx context.Context, email, name string) (*domain.User, error) {
	u := &domain.User{
		Email:       normalizeEmail(email),
		AccountKind: domain.AccountGoogle,
		Name:        name,
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}, {Name: "account_kind"}},
			DoNothing: true,
		}).
		Create(u)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 1 {
		return u, nil
	}

	return r.GetByEmailAndKind(ctx, email, domain.AccountGoogle)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
