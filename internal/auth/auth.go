package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims name the collaborator calling the API (the chat bot, an operator
// tool). End-user identity is supplied per request by that collaborator.
type Claims struct {
	Caller string `json:"caller"`
	jwt.RegisteredClaims
}

func GenerateToken(secret, caller string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Caller: caller,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   caller,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Caller == "" {
		claims.Caller = claims.Subject
	}
	if claims.Caller == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
