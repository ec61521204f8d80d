package middleware

import (
	"log/slog"
	"net/http"

	"field-booking/internal/handler/httperr"
	"field-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, ge := range c.Errors {
			if errs.KindOf(ge.Err) == errs.KindStorage {
				slog.Error("storage failure",
					"path", c.FullPath(),
					"error", ge.Err.Error(),
					"stack", errs.ExtractStackLines(ge.Err, 8),
				)
			}
		}

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if len(c.Errors) == 0 {
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(Lang(c), http.StatusInternalServerError, errs.ErrStorage.Reason()))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				resp := httperr.NewResponse(Lang(c), http.StatusInternalServerError, errs.ErrStorage.Reason())
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
