package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"field-booking/internal/domain/access"
	"field-booking/internal/domain/user"
	"field-booking/internal/handler/httperr"
	"field-booking/internal/pkg/cookie"
	"field-booking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

//go:generate mockgen -source=auth.go -destination=../../mock/middleware/auth_mock.go -package=middlewaremock
type TokenValidator interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const ctxActorKey = "actor"

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerOrCookie(c)
		if token == "" {
			httperr.AbortWithReason(c, Lang(c), http.StatusUnauthorized, httperr.ReasonUnauthenticated, nil)
			return
		}

		actor, err := m.actorFromToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithReason(c, Lang(c), http.StatusUnauthorized, httperr.ReasonUnauthenticated, err)
			return
		}

		SetActor(c, actor)
		c.Next()
	}
}

// OptionalAuth attaches the actor when a valid token is present and lets
// anonymous requests through otherwise.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerOrCookie(c); token != "" {
			if actor, err := m.actorFromToken(token); err == nil {
				SetActor(c, actor)
			}
		}
		c.Next()
	}
}

func (m *AuthMiddleware) actorFromToken(token string) (access.Actor, error) {
	claims, err := m.tokenValidator.ValidateToken(token)
	if err != nil {
		return access.Actor{}, err
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return access.Actor{}, err
	}
	return access.Actor{ID: claims.UserID, Role: role}, nil
}

func bearerOrCookie(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return cookie.GetAccessToken(c)
}

func SetActor(c *gin.Context, actor access.Actor) {
	c.Set(ctxActorKey, actor)
}

// GetActor returns the authenticated caller. It is only absent on routes
// mounted without RequireAuth.
func GetActor(c *gin.Context) (access.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return access.Actor{}, false
	}
	actor, ok := v.(access.Actor)
	return actor, ok
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	actor, ok := GetActor(c)
	return actor.ID, ok
}
