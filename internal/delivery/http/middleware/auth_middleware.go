package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware attaches the shopper's session to requests that carry a bearer token.
type AuthMiddleware struct {
	sessions service.SessionReader
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions service.SessionReader, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, logger: logger}
}

// Authenticate rejects requests without a readable, unexpired bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), "Authorization header is missing")
		}

		token := strings.TrimPrefix(authHeader, bearerPrefix)
		if token == authHeader || strings.TrimSpace(token) == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		session, err := m.sessions.ReadSession(token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected session token", slog.Any("error", err))

			return response.AppError(c, domainerrors.ErrUnauthenticated)
		}

		deliverycontext.SetSession(c, session)

		return next(c)
	}
}
