package password

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters. Changing these invalidates every stored hash, so
// they are fixed rather than configurable.
const (
	saltLen    = 16
	iterations = 1000
	keyLen     = 64
	tokenLen   = 32
)

// Hash derives a salted PBKDF2-SHA512 hash of the password and returns
// it as "salt:hash", both parts hex-encoded. A fresh random salt is
// generated on every call, so two hashes of the same password differ.
func Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, keyLen, sha512.New)
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key), nil
}

// Verify reports whether password matches the stored "salt:hash" value.
// Malformed input (missing separator, empty salt, bad hex) fails closed.
// The comparison is constant-time.
func Verify(password, stored string) bool {
	salt, hash, ok := strings.Cut(stored, ":")
	if !ok || salt == "" {
		return false
	}

	saltBytes, err := hex.DecodeString(salt)
	if err != nil {
		return false
	}
	hashBytes, err := hex.DecodeString(hash)
	if err != nil {
		return false
	}

	key := pbkdf2.Key([]byte(password), saltBytes, iterations, keyLen, sha512.New)
	return subtle.ConstantTimeCompare(key, hashBytes) == 1
}

// GenerateToken returns 256 bits of cryptographically secure randomness,
// hex-encoded. Used for session, verification, and reset tokens alike.
func GenerateToken() (string, error) {
	b := make([]byte, tokenLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
