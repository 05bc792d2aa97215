package auth

import (
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "recipebox/internal/errors"
	"recipebox/internal/model"
	"recipebox/internal/repository"
)

// contextUserKey is where the middleware stores the resolved user.
const contextUserKey = "auth.user"

// Authenticate extracts the bearer token from the request, verifies it and
// resolves the embedded subject (the user's email) to a User row. Every
// failure mode maps to a 401 at the HTTP boundary.
func Authenticate(c echo.Context, jwtService *JWTService, users repository.UserRepository) (*model.User, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return nil, apperrors.ErrMissingCredentials
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, apperrors.ErrMissingCredentials
	}

	subject, err := jwtService.Verify(parts[1])
	if err != nil {
		return nil, err
	}

	user, err := users.FindByEmail(c.Request().Context(), subject)
	if err != nil {
		return nil, apperrors.ErrUnknownSubject
	}

	return user, nil
}

// Middleware returns an echo middleware guarding protected routes. It rejects
// the request with 401 before the handler runs, so no side effect is
// performed on failed authentication.
func Middleware(jwtService *JWTService, users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := Authenticate(c, jwtService, users)
			if err != nil {
				httpErr := apperrors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			c.Set(contextUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user resolved by Middleware for this request.
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(contextUserKey).(*model.User)
	return user, ok
}
