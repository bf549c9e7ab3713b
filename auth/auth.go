// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingAdminKey = errors.New("admin key required")
	ErrInvalidAdminKey = errors.New("invalid admin key")
)

// GenerateAdminKey creates a random secret suitable for ADMIN_KEY
func GenerateAdminKey() (string, error) {
	b := make([]byte, 24) // 24 bytes = 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate admin key: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// ValidateAdminKey checks the provided key against the configured one.
// Both sides are hashed first so the comparison is constant time regardless of length.
func ValidateAdminKey(provided, configured string) error {
	if provided == "" {
		return ErrMissingAdminKey
	}
	p := sha256.Sum256([]byte(provided))
	c := sha256.Sum256([]byte(configured))
	if !hmac.Equal(p[:], c[:]) {
		return ErrInvalidAdminKey
	}
	return nil
}
