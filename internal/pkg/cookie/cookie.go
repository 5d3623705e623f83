package cookie

import (
	"net/http"

	"wanderlust-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, sessionID string) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		cfg.Name,
		sessionID,
		int(cfg.MaxAge.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearSessionCookie(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		cfg.Name,
		"",
		-1,
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func GetSessionID(c *gin.Context, cfg config.CookieConfig) string {
	sid, _ := c.Cookie(cfg.Name)
	return sid
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
