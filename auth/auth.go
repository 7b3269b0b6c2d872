// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"net/http"
	"strings"
)

const (
	AdminKeyHeader = "X-Admin-Key"
	AdminKeyField  = "admin_key"
)

var (
	ErrMissingAdminKey = errors.New("admin key required")
	ErrInvalidAdminKey = errors.New("invalid admin key")
)

// AdminKeyFromRequest reads the admin key from the header, falling back
// to the form field used by the admin pages.
func AdminKeyFromRequest(r *http.Request) string {
	if key := r.Header.Get(AdminKeyHeader); key != "" {
		return strings.TrimSpace(key)
	}
	return strings.TrimSpace(r.PostFormValue(AdminKeyField))
}

// ValidateAdminKey checks the provided key against the configured one.
// An empty configured key disables the check.
func ValidateAdminKey(provided, configured string) error {
	if configured == "" {
		return nil
	}
	if provided == "" {
		return ErrMissingAdminKey
	}

	// Compare fixed-length digests so the key length is not observable
	want := sha256.Sum256([]byte(configured))
	got := sha256.Sum256([]byte(provided))
	if !hmac.Equal(got[:], want[:]) {
		return ErrInvalidAdminKey
	}
	return nil
}
