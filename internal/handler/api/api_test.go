//go:build unit

package api_test

import (
	"field-booking/internal/domain/access"
	"field-booking/internal/domain/user"
	reqdto "field-booking/internal/handler/dto/request"
	"field-booking/internal/handler/middleware"
	"field-booking/internal/testing/httptest"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const testToken = "bearer-token"

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := reqdto.RegisterValidators(v); err != nil {
			panic(err)
		}
	}
}

// newEngine mounts the production locale and error middleware plus a stub
// that authenticates any request carrying a bearer token as actor.
func newEngine(actor *access.Actor) *gin.Engine {
	engine := httptest.NewTestEngine()
	engine.Use(middleware.Locale(), middleware.ErrorHandler())
	engine.Use(func(c *gin.Context) {
		if actor != nil && c.GetHeader("Authorization") != "" {
			middleware.SetActor(c, *actor)
		}
		c.Next()
	})
	return engine
}

func actorWith(role user.Role) *access.Actor {
	return &access.Actor{ID: uuid.New(), Role: role}
}
