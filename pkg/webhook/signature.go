// Package webhook authenticates inbound webhook deliveries signed with
// HMAC-SHA256 over the raw request body.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Sign computes the lowercase hex HMAC-SHA256 digest of message keyed by
// secret. It is the signature a webhook producer sends alongside the body.
func Sign(message []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(message)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature is the HMAC-SHA256 hex digest of message
// keyed by secret. The comparison is constant time to resist timing
// side-channels; a mismatch returns false and never panics. The hex
// comparison is case sensitive.
func Verify(message []byte, secret, signature string) bool {
	expected := Sign(message, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
