package context

import (
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// KeySession is the echo.Context key for the authenticated shopper session.
const KeySession ContextKey = "session"

// SetSession stores the authenticated session on c.
func SetSession(c echo.Context, session *service.Session) {
	c.Set(string(KeySession), session)
}

// GetSession returns the authenticated session, or nil for anonymous requests.
func GetSession(c echo.Context) *service.Session {
	session, _ := c.Get(string(KeySession)).(*service.Session)

	return session
}
