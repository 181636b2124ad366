package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
)

const claimsContextKey = "session_claims"

// bearerAuth verifies the Authorization header on protected routes. An
// absent header or a non-Bearer scheme means no access was attempted and
// maps to 401; a present but invalid or expired token maps to 403.
func (s *Server) bearerAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {

		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, common.ErrMissingToken.Error())
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, common.ErrMissingToken.Error())
		}

		claims, err := auth.ParseToken(tokenString, s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				return echo.NewHTTPError(http.StatusForbidden, common.ErrTokenExpired.Error())
			}
			return echo.NewHTTPError(http.StatusForbidden, common.ErrInvalidToken.Error())
		}

		c.Set(claimsContextKey, claims)
		return next(c)
	}
}

// claims returns the session claims stored by bearerAuth.
func (s *Server) claims(c echo.Context) (*auth.Claims, error) {
	claims, ok := c.Get(claimsContextKey).(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusForbidden, common.ErrInvalidToken.Error())
	}
	return claims, nil
}
