package auth

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// IdentityKey is the request-locals key under which the verified phone is
// stored for downstream handlers.
const IdentityKey = "member_phone"

// Claims is the token payload. Phone identifies the member.
type Claims struct {
	Phone string `json:"phone"`
	jwt.RegisteredClaims
}

// Identity is the transient result of verifying a token. It lives only for
// the duration of the request that carried the token.
type Identity struct {
	Phone string
}

// BearerToken extracts the token segment from an Authorization header of the
// form "Bearer <token>". A missing header or missing segment is
// ErrMissingToken.
func BearerToken(header string) (string, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrMissingToken
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

// VerifyToken checks the token's HS256 signature and expiry against the
// process-wide secret and returns the identity carried in its claims. All
// verification failures collapse into ErrInvalidToken; no token is ever
// issued here.
func VerifyToken(tokenStr string, secret []byte) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}
	if claims.Phone == "" {
		return Identity{}, ErrInvalidToken
	}
	return Identity{Phone: claims.Phone}, nil
}
