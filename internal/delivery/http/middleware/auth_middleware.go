package middleware

import (
	"strings"

	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUsername is the echo.Context key under which Authenticate stores
// the verified token subject for downstream handlers.
const ContextKeyUsername = "username"

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token on the Authorization header and
// exposes its subject to the handlers. Failures surface as AppErrors so the
// central error handler renders them uniformly.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrInvalidToken.WrapMessage("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrInvalidToken.WrapMessage("authorization header is not a bearer token")
		}

		username, err := m.tokenSvc.DecodeToken(tokenString)
		if err != nil {
			return err
		}

		c.Set(ContextKeyUsername, username)

		return next(c)
	}
}
