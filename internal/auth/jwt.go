package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/fx"
)

type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the payload carried by mobile API tokens. TokenType keeps access
// and refresh tokens from being swapped for one another.
type Claims struct {
	UserID    string    `json:"userId"`
	TokenType TokenType `json:"tokenType"`
	jwt.RegisteredClaims
}

type TokenManagerParams struct {
	fx.In

	Secret string `name:"jwt_secret"`
}

// TokenManager signs and verifies the access/refresh token pair used by the
// mobile clients.
type TokenManager struct {
	secret []byte
}

func NewTokenManager(p TokenManagerParams) *TokenManager {
	return &TokenManager{secret: []byte(p.Secret)}
}

func (m *TokenManager) GenerateAccessToken(userID string) (string, error) {
	return m.generate(userID, TokenAccess, accessTokenTTL)
}

func (m *TokenManager) GenerateRefreshToken(userID string) (string, error) {
	return m.generate(userID, TokenRefresh, refreshTokenTTL)
}

func (m *TokenManager) generate(userID string, tokenType TokenType, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses the token and checks that it is of the expected type.
func (m *TokenManager) Verify(token string, expected TokenType) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != expected {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
