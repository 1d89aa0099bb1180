// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidAdminKey = errors.New("invalid admin key")
	ErrInvalidID       = errors.New("invalid tabulation ID")
)

// GenerateID creates a random (version 4) UUID for a tabulation
func GenerateID() string {
	return uuid.NewString()
}

// ValidateID checks that id is a UUID as produced by GenerateID
func ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	return nil
}

// GenerateAdminKey creates an HMAC-based admin key for a tabulation
// This is deterministic and verifiable
func GenerateAdminKey(tabulationID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(tabulationID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks if the provided admin key is valid for the tabulation
func ValidateAdminKey(tabulationID, adminKey, salt string) error {
	expected := GenerateAdminKey(tabulationID, salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}
