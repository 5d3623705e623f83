//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"wanderlust-booking/internal/handler/middleware"
	"wanderlust-booking/internal/infra/observability"
	"wanderlust-booking/internal/pkg/config"
	"wanderlust-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const knownSession = "5b0f1f0e-2c55-4f4e-9a57-0c1f1d9a7e11"

func sessionRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.SessionMiddleware(cfg.Cookie))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetSessionID(c))
	})
	return r
}

func TestSessionMiddleware(t *testing.T) {
	cfg := config.NewTestConfig()

	t.Run("issues a new id when none is sent", func(t *testing.T) {
		w := httptest.PerformRequest(t, sessionRouter(cfg), http.MethodGet, "/whoami", nil, "")

		require.Equal(t, http.StatusOK, w.Code)
		sid := w.Body.String()
		assert.Len(t, sid, 36)
		assert.Equal(t, sid, w.Header().Get(middleware.SessionIDHeader))

		c := httptest.ExtractCookie(w, cfg.Cookie.Name)
		require.NotNil(t, c)
		assert.Equal(t, sid, c.Value)
		assert.True(t, c.HttpOnly)
	})

	t.Run("header id is reused", func(t *testing.T) {
		w := httptest.PerformRequest(t, sessionRouter(cfg), http.MethodGet, "/whoami", nil, knownSession)
		assert.Equal(t, knownSession, w.Body.String())
	})

	t.Run("cookie wins over header", func(t *testing.T) {
		other := "0d6f0c3e-8f57-4a8b-9c4e-2f4b7a1e5d90"
		cookies := []*http.Cookie{{Name: cfg.Cookie.Name, Value: other}}

		w := httptest.PerformRequestWithCookies(t, sessionRouter(cfg), http.MethodGet, "/whoami", nil, cookies, knownSession)
		assert.Equal(t, other, w.Body.String())
	})

	t.Run("non uuid id is replaced", func(t *testing.T) {
		w := httptest.PerformRequest(t, sessionRouter(cfg), http.MethodGet, "/whoami", nil, "../../etc/passwd")

		sid := w.Body.String()
		assert.NotEqual(t, "../../etc/passwd", sid)
		assert.Len(t, sid, 36)
	})

	t.Run("other spellings of a uuid collapse to one id", func(t *testing.T) {
		for _, spelling := range []string{
			"{5b0f1f0e-2c55-4f4e-9a57-0c1f1d9a7e11}",
			"urn:uuid:5b0f1f0e-2c55-4f4e-9a57-0c1f1d9a7e11",
			"5B0F1F0E2C554F4E9A570C1F1D9A7E11",
		} {
			w := httptest.PerformRequest(t, sessionRouter(cfg), http.MethodGet, "/whoami", nil, spelling)
			assert.Equal(t, knownSession, w.Body.String(), spelling)
			assert.Equal(t, knownSession, w.Header().Get(middleware.SessionIDHeader), spelling)
		}
	})
}

func TestRateLimiter(t *testing.T) {
	build := func(t *testing.T, cfg config.Config) *gin.Engine {
		t.Helper()
		limiter, err := middleware.NewRateLimiter(cfg, nil)
		require.NoError(t, err)

		r := sessionRouter(cfg)
		r.GET("/limited", limiter.Limit(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
		return r
	}

	t.Run("rejects past the rate with 429", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.RateLimit.Enabled = true
		cfg.RateLimit.Rate = "2-M"
		r := build(t, cfg)

		for range 2 {
			w := httptest.PerformRequest(t, r, http.MethodGet, "/limited", nil, knownSession)
			require.Equal(t, http.StatusNoContent, w.Code)
		}

		w := httptest.PerformRequest(t, r, http.MethodGet, "/limited", nil, knownSession)
		httptest.AssertErrorResponse(t, w, http.StatusTooManyRequests, "Too many requests")

		// a different session has its own budget
		w = httptest.PerformRequest(t, r, http.MethodGet, "/limited", nil, "0d6f0c3e-8f57-4a8b-9c4e-2f4b7a1e5d90")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("requests without a session share the client ip budget", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.RateLimit.Enabled = true
		cfg.RateLimit.Rate = "2-M"
		r := build(t, cfg)

		codes := make([]int, 0, 5)
		for range 5 {
			w := httptest.PerformRequest(t, r, http.MethodGet, "/limited", nil, "")
			codes = append(codes, w.Code)
		}
		assert.Equal(t, []int{
			http.StatusNoContent,
			http.StatusNoContent,
			http.StatusTooManyRequests,
			http.StatusTooManyRequests,
			http.StatusTooManyRequests,
		}, codes)

		// a returning session is keyed separately from its ip
		w := httptest.PerformRequest(t, r, http.MethodGet, "/limited", nil, knownSession)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("disabled passes everything", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.RateLimit.Rate = "1-M"
		r := build(t, cfg)

		for range 5 {
			w := httptest.PerformRequest(t, r, http.MethodGet, "/limited", nil, knownSession)
			assert.Equal(t, http.StatusNoContent, w.Code)
		}
	})

	t.Run("bad rate format", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.RateLimit.Enabled = true
		cfg.RateLimit.Rate = "lots"

		_, err := middleware.NewRateLimiter(cfg, nil)
		assert.Error(t, err)
	})
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := observability.NewMetrics()
	r := gin.New()
	r.Use(middleware.MetricsMiddleware(m))
	r.GET("/hotels/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	httptest.PerformRequest(t, r, http.MethodGet, "/hotels/3", nil, "")
	httptest.PerformRequest(t, r, http.MethodGet, "/hotels/4", nil, "")
	httptest.PerformRequest(t, r, http.MethodGet, "/nowhere", nil, "")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("/hotels/:id", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("unmatched", "GET", "404")))
}

func TestErrorHandlerAndRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.GET("/panic", func(*gin.Context) { panic("boom") })
	r.GET("/silent", func(c *gin.Context) { _ = c.Error(assert.AnError) })

	t.Run("panic becomes 500 envelope", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("private error without a response becomes 500", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/silent", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})
}

func TestCORSMiddlewareExposesSessionHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig().CORS

	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(cfg))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := nethttptest.NewRecorder()
	r.ServeHTTP(w, req)

	exposed := w.Header().Get("Access-Control-Expose-Headers")
	assert.Contains(t, exposed, "X-Session-Id")
	assert.Contains(t, exposed, "Location")
}
