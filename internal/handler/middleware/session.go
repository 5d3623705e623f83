package middleware

import (
	"wanderlust-booking/internal/pkg/config"
	"wanderlust-booking/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionIDKey     = "session_id"
	sessionIssuedKey = "session_issued"
	SessionIDHeader  = "X-Session-ID"
)

// SessionMiddleware gives every request a session id. An existing one comes
// from the cookie or the X-Session-ID header and is stored in canonical UUID
// form; anything that is not a UUID is replaced. The id is echoed back in both
// places.
func SessionMiddleware(cfg config.CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := cookie.GetSessionID(c, cfg)
		if raw == "" {
			raw = c.GetHeader(SessionIDHeader)
		}

		var sid string
		if parsed, err := uuid.Parse(raw); err == nil {
			sid = parsed.String()
		} else {
			sid = uuid.NewString()
			c.Set(sessionIssuedKey, true)
		}

		c.Set(sessionIDKey, sid)
		cookie.SetSessionCookie(c, cfg, sid)
		c.Header(SessionIDHeader, sid)

		c.Next()
	}
}

func GetSessionID(c *gin.Context) string {
	if v, exists := c.Get(sessionIDKey); exists {
		if sid, ok := v.(string); ok {
			return sid
		}
	}
	return ""
}

// IsNewSession reports whether the id was issued on this request rather than
// sent by the client.
func IsNewSession(c *gin.Context) bool {
	return c.GetBool(sessionIssuedKey)
}
