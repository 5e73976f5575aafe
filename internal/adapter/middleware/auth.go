package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"immofund-backend/internal/domain/identity"
	"immofund-backend/pkg/id"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorKey = "actor"

// Claims carried by access tokens. Subject is the 32-hex user id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func SetActor(c echo.Context, a identity.Actor) { c.Set(actorKey, a) }

// ActorFrom returns the authenticated caller, or the zero Actor.
func ActorFrom(c echo.Context) identity.Actor {
	a, _ := c.Get(actorKey).(identity.Actor)
	return a
}

// Auth verifies an HS256 bearer token and stores the caller on the context.
func Auth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing authorization header"})
			}
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authorization must be a bearer token"})
			}

			actor, err := parseActor(strings.TrimSpace(raw), secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}
			SetActor(c, actor)
			return next(c)
		}
	}
}

func parseActor(raw string, secret []byte) (identity.Actor, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return identity.Actor{}, err
	}
	if !id.Valid(claims.Subject) {
		return identity.Actor{}, errors.New("subject is not a user id")
	}
	return identity.Actor{UserID: claims.Subject, Role: identity.Role(claims.Role)}, nil
}

// SignToken issues a token for userID. Used by tooling and tests; login
// lives outside this service.
func SignToken(secret []byte, userID string, role identity.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
