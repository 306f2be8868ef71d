package middleware

import (
	"report-srv/pkg/response"
	"report-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Auth rejects requests without a valid token.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := m.readToken(c)
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: Invalid token: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		setPayload(c, payload)
		c.Next()
	}
}

// OptionalAuth sets the caller's scope when a valid token is sent and the anonymous scope
// otherwise. An invalid token is still rejected.
func (m Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := m.readToken(c)
		if tokenString == "" {
			ctx := scope.SetScopeToContext(c.Request.Context(), scope.Anonymous())
			c.Request = c.Request.WithContext(ctx)
			c.Next()
			return
		}

		payload, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		setPayload(c, payload)
		c.Next()
	}
}

// readToken reads the token from the Authorization header, then from the auth cookie.
func (m Middleware) readToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		// Support both "Bearer <token>" and plain token
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			return authHeader[7:]
		}
		return authHeader
	}

	if m.cookieConfig.Name == "" {
		return ""
	}
	tokenString, err := c.Cookie(m.cookieConfig.Name)
	if err != nil {
		return ""
	}
	return tokenString
}

func setPayload(c *gin.Context, payload scope.Payload) {
	ctx := c.Request.Context()
	ctx = scope.SetPayloadToContext(ctx, payload)
	ctx = scope.SetScopeToContext(ctx, scope.NewScope(payload))
	c.Request = c.Request.WithContext(ctx)
}
