package api

import (
	"net/http"

	"field-booking/internal/domain/access"
	resdto "field-booking/internal/handler/dto/response"
	"field-booking/internal/handler/httperr"
	"field-booking/internal/handler/middleware"
	"field-booking/internal/pkg/i18n"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func respond(c *gin.Context, status int, key string, data any) {
	c.JSON(status, resdto.Envelope{Message: i18n.T(middleware.Lang(c), key), Data: data})
}

func fail(c *gin.Context, err error) {
	httperr.Abort(c, middleware.Lang(c), err)
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	return pathUUID(c, "id")
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithReason(c, middleware.Lang(c), http.StatusBadRequest, httperr.ReasonInvalidID, err)
		return uuid.Nil, false
	}
	return id, true
}

func requireActor(c *gin.Context) (access.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithReason(c, middleware.Lang(c), http.StatusUnauthorized, httperr.ReasonUnauthenticated, nil)
	}
	return actor, ok
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortBinding(c, middleware.Lang(c), err)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		httperr.AbortBinding(c, middleware.Lang(c), err)
		return false
	}
	return true
}
