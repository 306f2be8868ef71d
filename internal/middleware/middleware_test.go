package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"report-srv/config"
	"report-srv/internal/model"
	"report-srv/pkg/locale"
	"report-srv/pkg/log"
	"report-srv/pkg/scope"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeManager struct{}

func (fakeManager) Verify(token string) (scope.Payload, error) {
	if token != "good" {
		return scope.Payload{}, errors.New("invalid token")
	}
	return scope.Payload{UserID: "u-1", Username: "jdoe", Role: "admin"}, nil
}

func newTestMiddleware() Middleware {
	return New(log.NewNop(), fakeManager{}, config.CookieConfig{Name: "bhima_auth_token"})
}

func scopeEcho(c *gin.Context) {
	sc := scope.GetScopeFromContext(c.Request.Context())
	c.String(http.StatusOK, sc.UserID)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	r := gin.New()
	r.GET("/", newTestMiddleware().Auth(), scopeEcho)

	tcs := map[string]struct {
		header     string
		cookie     string
		wantStatus int
		wantBody   string
	}{
		"bearer":        {header: "Bearer good", wantStatus: http.StatusOK, wantBody: "u-1"},
		"raw header":    {header: "good", wantStatus: http.StatusOK, wantBody: "u-1"},
		"cookie":        {cookie: "good", wantStatus: http.StatusOK, wantBody: "u-1"},
		"missing":       {wantStatus: http.StatusUnauthorized},
		"invalid token": {header: "Bearer bad", wantStatus: http.StatusUnauthorized},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "bhima_auth_token", Value: tc.cookie})
			}

			w := serve(r, req)
			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantBody != "" {
				assert.Equal(t, tc.wantBody, w.Body.String())
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	r := gin.New()
	r.GET("/", newTestMiddleware().OptionalAuth(), scopeEcho)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.AnonymousUserID, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	w = serve(r, req)
	assert.Equal(t, "u-1", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad")
	w = serve(r, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLocale(t *testing.T) {
	r := gin.New()
	r.GET("/", newTestMiddleware().Locale(), func(c *gin.Context) {
		c.String(http.StatusOK, locale.GetLang(c.Request.Context()))
	})

	for header, want := range map[string]string{"": "en", "fr-FR,fr;q=0.9": "fr", "de": "en"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", header)
		assert.Equal(t, want, serve(r, req).Body.String(), header)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("lang", "fr")
	req.Header.Set("Accept-Language", "en")
	assert.Equal(t, "fr", serve(r, req).Body.String())
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(log.NewNop(), nil))
	r.GET("/", func(c *gin.Context) { panic("boom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "ERRORS.INTERNAL")
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestID(c.Request.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := serve(r, req)
	assert.Equal(t, "abc-123", w.Body.String())
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", 200))
	w = serve(r, req)
	assert.Len(t, w.Body.String(), 36)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS(DefaultCORSConfig("production")))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	w := serve(r, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	r = gin.New()
	r.Use(CORS(DefaultCORSConfig("development")))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:8080")
	w = serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:8080", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCompose(t *testing.T) {
	var calls []string
	hook := func(name string) Hook {
		return Hook{
			Name:   name,
			Before: func(*gin.Context) error { calls = append(calls, "before:"+name); return nil },
			After:  func(*gin.Context) { calls = append(calls, "after:"+name) },
		}
	}

	r := gin.New()
	r.GET("/", Compose(func(c *gin.Context) {
		calls = append(calls, "handler")
		c.Status(http.StatusOK)
	}, hook("a"), hook("b"), NoStore()))

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Equal(t, []string{"before:a", "before:b", "handler", "after:b", "after:a"}, calls)
}

func TestCompose_BeforeStops(t *testing.T) {
	var calls []string
	r := gin.New()
	r.GET("/", Compose(func(c *gin.Context) {
		calls = append(calls, "handler")
	},
		Hook{Name: "a", After: func(*gin.Context) { calls = append(calls, "after:a") }},
		Hook{Name: "deny", Before: func(c *gin.Context) error {
			c.AbortWithStatus(http.StatusForbidden)
			return errors.New("denied")
		}, After: func(*gin.Context) { calls = append(calls, "after:deny") }},
		LogRequest(log.NewNop()),
	))

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, []string{"after:a"}, calls)
}
