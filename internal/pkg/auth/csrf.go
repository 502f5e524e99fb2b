package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// CSRF derives request-forgery tokens from session tokens. The token
// is an HMAC over the session token, so it stays valid exactly as long
// as the session it was issued for.
type CSRF struct {
	secret []byte
}

// NewCSRF builds a CSRF token issuer with the provided secret.
func NewCSRF(secret string) *CSRF {
	return &CSRF{secret: []byte(secret)}
}

// Issue returns the CSRF token bound to the session token.
func (c *CSRF) Issue(sessionToken string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte("csrf:"))
	mac.Write([]byte(sessionToken))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks that token was issued for the given session token.
func (c *CSRF) Verify(sessionToken, token string) bool {
	expected := c.Issue(sessionToken)
	return hmac.Equal([]byte(expected), []byte(token))
}
