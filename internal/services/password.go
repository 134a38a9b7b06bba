package services

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/metlab/inventory/config"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt digests start with "$2a$", "$2b$" or "$2y$".
const bcryptPrefix = "$2"

// HashPassword returns the lowercase hex SHA-256 digest of password. The
// digest is unsalted; existing databases store this format.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether digest is the SHA-256 digest of password.
func VerifyPassword(password, digest string) bool {
	return HashPassword(password) == digest
}

// PasswordHasher produces digests with the configured scheme and verifies
// digests of either scheme.
type PasswordHasher struct {
	scheme string
	cost   int
}

func NewPasswordHasher(scheme string) *PasswordHasher {
	return &PasswordHasher{
		scheme: strings.ToLower(strings.TrimSpace(scheme)),
		cost:   bcrypt.DefaultCost,
	}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	if h.scheme != config.PasswordSchemeBcrypt {
		return HashPassword(password), nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *PasswordHasher) Verify(password, digest string) bool {
	if strings.HasPrefix(digest, bcryptPrefix) {
		return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
	}
	return VerifyPassword(password, digest)
}
