package dbrepo

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// apiKeyLength is the length of generated API keys in bytes (hex encoded on output)
const apiKeyLength = 32

// GenerateAPIKey creates a new cryptographically secure API key.
func GenerateAPIKey() (string, error) {
	bytes := make([]byte, apiKeyLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate api key: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
