package tx

import (
	"crypto/rand"
	"fmt"
)

// GenerateNonce returns 8 random bytes from the process's CSPRNG, suitable
// as a transaction nonce. Safe for concurrent use; every transaction must
// get its own nonce to keep transaction ids distinct.
func GenerateNonce() ([]byte, error) {
	nonce := make([]byte, NonceLength)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("tx: generate nonce: %w", err)
	}
	return nonce, nil
}
