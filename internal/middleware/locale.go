package middleware

import (
	"report-srv/pkg/locale"

	"github.com/gin-gonic/gin"
)

// Locale sets the request language from the lang header, falling back to Accept-Language.
func (m Middleware) Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		langHeader := c.GetHeader("lang")
		if langHeader == "" {
			langHeader = c.GetHeader("Accept-Language")
		}

		lang := locale.ParseLang(langHeader)

		ctx := c.Request.Context()
		ctx = locale.SetLocaleToContext(ctx, lang)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
