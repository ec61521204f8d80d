package middleware

import (
	"field-booking/internal/pkg/i18n"

	"github.com/gin-gonic/gin"
)

const ctxLangKey = "lang"

// Locale picks the response language from the lang query parameter or the
// Accept-Language header.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := i18n.Negotiate(c.GetHeader("Accept-Language"), c.Query("lang"))
		c.Set(ctxLangKey, lang)
		c.Header("Content-Language", string(lang))
		c.Next()
	}
}

func Lang(c *gin.Context) i18n.Lang {
	if v, ok := c.Get(ctxLangKey); ok {
		if lang, ok := v.(i18n.Lang); ok {
			return lang
		}
	}
	return i18n.Default
}
