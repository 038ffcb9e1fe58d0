package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes     = 16
	kdfIterations = 10000
	kdfKeyLength  = 32
)

// GenerateSalt returns a fresh random salt, hex-encoded for storage next
// to the digest.
func GenerateSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashPassword derives the stored digest from a plaintext password and its
// salt using PBKDF2-HMAC-SHA512. The same (password, salt) pair always
// yields the same digest, so sign-in recomputes and compares.
func HashPassword(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), kdfIterations, kdfKeyLength, sha512.New)
	return hex.EncodeToString(key)
}

// DigestsEqual compares two digests in constant time.
func DigestsEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
