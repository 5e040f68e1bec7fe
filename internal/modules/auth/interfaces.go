package auth

import (
	"context"
	"time"

	"postboard/internal/domain"
	"postboard/internal/pkg/googleauth"
	"postboard/internal/pkg/jwt"
)

// UserRepositoryInterface — only the methods the auth service uses
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmailAndKind(ctx context.Context, email string, kind domain.AccountKind) (*domain.User, error)
	ExistsByEmailAndKind(ctx context.Context, email string, kind domain.AccountKind) (bool, error)
	GetOrCreateGoogle(ctx context.Context, email, name string) (*domain.User, error)
}

// RefreshTokenRepositoryInterface — allow-list storage for refresh tokens
type RefreshTokenRepositoryInterface interface {
	Append(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	Remove(ctx context.Context, userID int64, token string) (bool, error)
	RemoveAllForUser(ctx context.Context, userID int64) error
}

// TokenService signs and verifies token pairs.
type TokenService interface {
	GeneratePair(userID int64) (*jwt.TokenPair, error)
	ValidateToken(tokenStr string) (*jwt.Claims, error)
	RefreshTTL() time.Duration
}

// AssertionVerifier validates a third-party identity assertion.
type AssertionVerifier interface {
	Verify(ctx context.Context, rawToken string) (*googleauth.Identity, error)
}
