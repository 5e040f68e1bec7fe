package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrNotConfigured means no signing secret is set. It is reported to the
	// client as a configuration failure, never as an invalid token.
	ErrNotConfigured = errors.New("missing auth configuration")
	ErrInvalidToken  = errors.New("invalid token")
)

type Service struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

type Claims struct {
	UserID int64  `json:"user_id"`
	Nonce  string `json:"nonce"`
	jwtlib.RegisteredClaims
}

// TokenPair is an access/refresh pair issued together. Both tokens share one
// nonce so a pair minted in the same second as an earlier one still differs.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func New(secret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *Service) Configured() bool { return len(s.secret) > 0 }

func (s *Service) RefreshTTL() time.Duration { return s.refreshTTL }

func (s *Service) GeneratePair(userID int64) (*TokenPair, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}

	nonce := uuid.NewString()

	access, err := s.sign(userID, nonce, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.sign(userID, nonce, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *Service) sign(userID int64, nonce string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID: userID,
		Nonce:  nonce,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken checks signature and expiry only. Liveness of refresh tokens
// is a store lookup done by the auth service, not here.
func (s *Service) ValidateToken(tokenStr string) (*Claims, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}

	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
