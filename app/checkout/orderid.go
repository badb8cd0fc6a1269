package checkout

import (
	"crypto/rand"
	"crypto/sha1"
	"encoding/hex"
	"fmt"

	"github.com/mytheresa/go-shopping-cart/models"
)

// MaxOrderIDLength is the length of a hex SHA-1 digest.
const MaxOrderIDLength = sha1.Size * 2

// GenerateOrderID hashes 20 random bytes with SHA-1 and returns the first
// length hex characters of the digest.
func GenerateOrderID(length int) (string, error) {
	if length < 1 || length > MaxOrderIDLength {
		return "", models.NewValidationError("order id length", fmt.Sprintf("must be between 1 and %d", MaxOrderIDLength))
	}
	seed := make([]byte, 20)
	if _, err := rand.Read(seed); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	sum := sha1.Sum(seed)
	return hex.EncodeToString(sum[:])[:length], nil
}
