// Package auth reads the shopper's session token issued by the account service.
package auth

import (
	"time"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
)

// sessionReader is a concrete implementation of the SessionReader interface using the JWT standard.
// The storefront does not hold the signing secret, so it only decodes claims and checks expiry.
type sessionReader struct {
	parser *jwt.Parser
	now    func() time.Time
}

// NewSessionReader is the constructor for sessionReader.
func NewSessionReader() service.SessionReader {
	return &sessionReader{
		parser: jwt.NewParser(),
		now:    time.Now,
	}
}

// ReadSession decodes the token and rejects malformed or expired ones.
func (r *sessionReader) ReadSession(token string) (*service.Session, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := r.parser.ParseUnverified(token, claims); err != nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("malformed session token")
	}

	session := &service.Session{
		AccessToken: token,
		Subject:     claims.Subject,
	}

	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
		if !session.ExpiresAt.After(r.now()) {
			return nil, domainerrors.ErrUnauthenticated.WrapMessage("session token expired")
		}
	}

	return session, nil
}
