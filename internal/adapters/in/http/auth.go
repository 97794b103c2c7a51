package http

import (
	"net/http"
	"strings"

	"shipadmin/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// callerContextKey is the echo context key under which the resolved caller
// identity is stored by the auth middleware.
const callerContextKey = "caller"

// Claims are the access-token claims this service consumes. User records are
// owned by the identity service; the token is the only thing crossing the
// boundary.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware parses the bearer token, resolves it into a kernel.Caller,
// and stores it in the request context. Requests without a valid token get
// 401; role checks are not done here, they belong to the command and query
// constructors.
func AuthMiddleware(signingKey []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, errorResponse{Message: "missing bearer token"})
			}

			caller, err := resolveCaller(token, signingKey)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorResponse{Message: "invalid token"})
			}

			c.Set(callerContextKey, caller)
			return next(c)
		}
	}
}

func resolveCaller(tokenString string, signingKey []byte) (kernel.Caller, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return signingKey, nil
	})
	if err != nil {
		return kernel.Caller{}, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return kernel.Caller{}, jwt.ErrTokenInvalidClaims
	}

	id, err := kernel.UUIDFromString(claims.UserID)
	if err != nil {
		return kernel.Caller{}, err
	}

	return kernel.NewCaller(id, kernel.Role(claims.Role))
}

// callerFromContext retrieves the caller stored by AuthMiddleware.
func callerFromContext(c echo.Context) (kernel.Caller, bool) {
	caller, ok := c.Get(callerContextKey).(kernel.Caller)
	return caller, ok
}
