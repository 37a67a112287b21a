package credentials

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// KDF parameters are fixed: changing any of them would invalidate every stored
// hash. The salt fed to the KDF is the hex string itself, not the raw bytes,
// to stay compatible with rows written by earlier versions of the service.
const (
	saltBytes  = 16
	iterations = 1000
	keyLen     = 64
)

// HashPassword derives a hex-encoded key from the password under a fresh
// random salt and returns both. There is deliberately no verify counterpart;
// nothing in the service authenticates against these hashes.
func HashPassword(password string) (hash, salt string, err error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("generate salt: %w", err)
	}
	salt = hex.EncodeToString(raw)
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLen, sha512.New)
	return hex.EncodeToString(key), salt, nil
}
