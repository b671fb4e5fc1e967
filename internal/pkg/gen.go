package pkg

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateConnectionID - generates a new unique identifier for a client connection.
func GenerateConnectionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "error-generating-connection-id"
	}

	return base64.RawURLEncoding.EncodeToString(b)
}
