package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// tokenBytes gives 256 bits of entropy per token; collisions are not a
// practical concern, but callers still retry on a store-level conflict.
const tokenBytes = 32

// GenerateToken returns an opaque, URL-safe session token. The token is a
// pure random store key and embeds no actor, role or expiry information,
// which keeps revocation a plain store delete.
func GenerateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random token bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
