package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionHeader = "X-Checkout-Session"
	SessionCookie = "checkout_session"

	sessionContextKey  = "checkout_session_id"
	maxSessionIDLength = 128
	sessionCookieTTL   = 24 * time.Hour
)

// Session resolves the checkout session id from the header, then the
// cookie, and mints a new one when neither holds a usable id. The id is
// echoed in both so clients can pick either.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(SessionHeader))
		if id == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				id = strings.TrimSpace(cookie)
			}
		}
		if id == "" || len(id) > maxSessionIDLength {
			id = uuid.NewString()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, id, int(sessionCookieTTL.Seconds()), "/", "", false, true)
		c.Header(SessionHeader, id)
		c.Set(sessionContextKey, id)
		c.Next()
	}
}

// SessionID returns the id set by Session, or "" outside of it.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
