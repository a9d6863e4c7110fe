package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("auth token is missing")
	ErrInvalidToken = errors.New("auth token is invalid")
)

// Claims - клеймы токена, идентификатор пользователя хранится в sub
type Claims struct {
	jwt.RegisteredClaims
}

// Verifier проверяет подписанные HS256 токены и извлекает ID пользователя
type Verifier struct {
	secret []byte
}

// NewVerifier создает Verifier, секрет обязателен
func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required but was empty")
	}
	return &Verifier{secret: []byte(secret)}, nil
}

// UserID проверяет токен и возвращает идентификатор пользователя
func (v *Verifier) UserID(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrMissingToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", fmt.Errorf("%w: subject is empty", ErrInvalidToken)
	}
	if strings.ContainsRune(subject, 0) {
		return "", fmt.Errorf("%w: subject contains a NUL byte", ErrInvalidToken)
	}
	return subject, nil
}

// Issue подписывает токен для пользователя. Выдача cookie при логине живет вне сервиса,
// метод нужен для утилит и тестов.
func (v *Verifier) Issue(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
