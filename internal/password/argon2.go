// Package password derives salted password digests with argon2id.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/argon2"

	"github.com/dtroode/storefront-server/internal/model"
)

const saltLen = 16

var _ model.PasswordHasher = (*Argon2)(nil)

// Params are the argon2id cost parameters.
type Params struct {
	Time   uint32
	MemKiB uint32
	Par    uint8
	KeyLen uint32
}

// Argon2 hashes passwords with argon2id. The same password, salt and params
// always produce the same digest.
type Argon2 struct {
	params Params
}

// NewArgon2 creates a hasher with the given params.
func NewArgon2(params Params) *Argon2 {
	return &Argon2{params: params}
}

// Hash returns the digest of password under salt.
func (a *Argon2) Hash(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, a.params.Time, a.params.MemKiB, a.params.Par, a.params.KeyLen)
}

// NewSalt returns a fresh random salt.
func (a *Argon2) NewSalt() ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// Equal compares two digests in constant time.
func Equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
