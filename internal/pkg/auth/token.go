package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/diegoamaro-sudo/levaali/internal/entities"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims полезная нагрузка сессионного токена. Тип аккаунта попадает в
// токен чтобы хендлеры могли проверять права без похода в БД.
type Claims struct {
	AccountType string `json:"account_type"`
	jwt.RegisteredClaims
}

type JWTIssuer struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewJWTIssuer(secret string, tokenTTL time.Duration) *JWTIssuer {
	return &JWTIssuer{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

func (i *JWTIssuer) Issue(account *entities.Account) (string, error) {
	now := time.Now().UTC()

	claims := Claims{
		AccountType: account.Type.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (i *JWTIssuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
