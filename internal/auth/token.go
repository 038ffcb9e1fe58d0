package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenCodec mints the opaque access token handed out at sign-in. The
// token is an HS256 JWT over the subject's UUID and the session's validity
// window, signed with a per-issuance secret supplied by the caller (the
// user's password digest). Nothing ever decodes these tokens: the session
// guard validates by looking the string up verbatim in the session store,
// so the token is a capability, not a self-verifying credential.
type TokenCodec struct{}

func NewTokenCodec() *TokenCodec {
	return &TokenCodec{}
}

func (c *TokenCodec) Issue(secret []byte, subjectID string, issuedAt, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub": subjectID,
		"iat": issuedAt.Unix(),
		"exp": expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
