package auth

import (
	"context"
	"errors"
	"time"

	"postboard/internal/domain"
	"postboard/internal/pkg/googleauth"
	"postboard/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service contains all business logic for authentication and the refresh
// token lifecycle.
type Service struct {
	users  UserRepositoryInterface
	tokens RefreshTokenRepositoryInterface
	jwt    TokenService
	google AssertionVerifier
}

type LoginResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

func NewService(users UserRepositoryInterface, tokens RefreshTokenRepositoryInterface, jwtSvc TokenService, google AssertionVerifier) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		jwt:    jwtSvc,
		google: google,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}

	exists, err := s.users.ExistsByEmailAndKind(ctx, req.Email, domain.AccountLocal)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        req.Email,
		AccountKind:  domain.AccountLocal,
		Name:         req.Name,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if req.Email == "" || req.Password == "" {
		return nil, ErrWrongCredentials
	}

	user, err := s.users.GetByEmailAndKind(ctx, req.Email, domain.AccountLocal)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWrongCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrWrongCredentials
	}

	return s.startSession(ctx, user)
}

// GoogleSignIn validates a Google ID token, provisions an account on first
// sign-in, and starts a session exactly as a password login would.
func (s *Service) GoogleSignIn(ctx context.Context, credential string) (*LoginResult, error) {
	identity, err := s.google.Verify(ctx, credential)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetOrCreateGoogle(ctx, identity.Email, identity.Name)
	if err != nil {
		return nil, err
	}

	return s.startSession(ctx, user)
}

// startSession issues a fresh token pair and records the refresh token.
// Concurrent logins are additive: each device gets its own list entry.
func (s *Service) startSession(ctx context.Context, user *domain.User) (*LoginResult, error) {
	pair, err := s.jwt.GeneratePair(user.ID)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(s.jwt.RefreshTTL())
	if err := s.tokens.Append(ctx, user.ID, pair.RefreshToken, expiresAt); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// Logout removes the presented refresh token from the user's allow-list.
// A signature-valid token that is not on the list is treated as a breach
// signal: every session of that user is revoked before the call fails.
func (s *Service) Logout(ctx context.Context, refreshRaw string) error {
	if refreshRaw == "" {
		return ErrMissingToken
	}

	claims, err := s.jwt.ValidateToken(refreshRaw)
	if err != nil {
		return err
	}

	removed, err := s.tokens.Remove(ctx, claims.UserID, refreshRaw)
	if err != nil {
		return err
	}
	if !removed {
		if err := s.tokens.RemoveAllForUser(ctx, claims.UserID); err != nil {
			return err
		}
		return ErrTokenRevoked
	}

	return nil
}

// Refresh rotates a refresh token: the presented token is redeemed exactly
// once, atomically, and replaced by a new pair. A second redemption of the
// same value is indistinguishable from theft and revokes every session.
func (s *Service) Refresh(ctx context.Context, refreshRaw string) (*jwt.TokenPair, error) {
	if refreshRaw == "" {
		return nil, ErrMissingToken
	}

	claims, err := s.jwt.ValidateToken(refreshRaw)
	if err != nil {
		return nil, err
	}

	removed, err := s.tokens.Remove(ctx, claims.UserID, refreshRaw)
	if err != nil {
		return nil, err
	}
	if !removed {
		if err := s.tokens.RemoveAllForUser(ctx, claims.UserID); err != nil {
			return nil, err
		}
		return nil, ErrTokenRevoked
	}

	pair, err := s.jwt.GeneratePair(claims.UserID)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(s.jwt.RefreshTTL())
	if err := s.tokens.Append(ctx, claims.UserID, pair.RefreshToken, expiresAt); err != nil {
		return nil, err
	}

	return pair, nil
}

var _ AssertionVerifier = (*googleauth.Verifier)(nil)
