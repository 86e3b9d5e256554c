package session

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("session: invalid token")

type Claims struct {
	SessionID string `json:"sid"`
	TenantID  string `json:"tid"`
	IsAdmin   bool   `json:"adm"`
	jwt.RegisteredClaims
}

// TokenIssuer assina o token entregue no login. O token só aponta para a
// sessão; quem manda é o Store.
type TokenIssuer struct {
	secret []byte
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret)}
}

func (t *TokenIssuer) Issue(s Session) (string, error) {
	claims := Claims{
		SessionID: s.ID,
		TenantID:  s.TenantID,
		IsAdmin:   s.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.TenantID,
			IssuedAt:  jwt.NewNumericDate(s.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *TokenIssuer) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
