package helpers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

var (
	// missing/malformed credential vs invalid/expired credential are
	// deliberately told apart (401 vs 403).
	ErrAccessDenied         = echo.NewHTTPError(http.StatusUnauthorized, "access denied, no token provided")
	ErrTokenInvalid         = echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
	ErrAuthenticationFailed = echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
)
