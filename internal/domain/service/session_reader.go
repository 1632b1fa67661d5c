package service

import "time"

// Session is the shopper's authenticated session as seen by the storefront.
type Session struct {
	AccessToken string
	Subject     string
	ExpiresAt   time.Time
}

// SessionReader turns a bearer token into a Session. It never verifies signatures;
// the account service remains the authority and rejects forged tokens itself.
type SessionReader interface {
	ReadSession(token string) (*Session, error)
}
