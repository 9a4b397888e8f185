// File: internal/service/token.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind 區分存取令牌與更新令牌
type TokenKind string

const (
	TokenAccess  TokenKind = "access"
	TokenRefresh TokenKind = "refresh"
)

// Claims 定義 JWT 負載內容，type 欄位標示令牌種類
type Claims struct {
	Kind TokenKind `json:"type"`
	jwt.RegisteredClaims
}

// TokenConfig 簽章密鑰與兩種令牌的存活時間，啟動時讀取一次後不再變動
type TokenConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// TokenService 負責發行與驗證 JWT
type TokenService struct {
	cfg TokenConfig
}

func NewTokenService(cfg TokenConfig) (*TokenService, error) {
	if cfg.Secret == "" {
		return nil, errors.New("token secret not set")
	}
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return nil, errors.New("token TTL must be positive")
	}
	return &TokenService{cfg: cfg}, nil
}

// Issue 依據主體 (館員 Email) 與令牌種類產生 JWT
func (s *TokenService) Issue(subject string, kind TokenKind) (string, error) {
	ttl := s.cfg.AccessTTL
	if kind == TokenRefresh {
		ttl = s.cfg.RefreshTTL
	}

	now := time.Now()
	claims := Claims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

// IssuePair 一次發行 access 與 refresh 令牌
func (s *TokenService) IssuePair(subject string) (access string, refresh string, err error) {
	access, err = s.Issue(subject, TokenAccess)
	if err != nil {
		return "", "", err
	}
	refresh, err = s.Issue(subject, TokenRefresh)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// Verify 驗證並解析 JWT，種類不符視同無效令牌
func (s *TokenService) Verify(tokenString string, kind TokenKind) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Kind != kind {
		return nil, fmt.Errorf("invalid token type %q", claims.Kind)
	}

	return claims, nil
}
