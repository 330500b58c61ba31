package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Verah-Mokaya/foodcourt-sub000/session"
)

// SessionRequired ensures a bearer token is on file before a request
// touches the remote API. The token is never verified here — the
// backend does that on every forwarded call; this only keeps
// obviously unauthenticated requests from leaving the client.
func SessionRequired(sess *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := sess.Token(); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
			c.Abort()
			return
		}
		if sess.Expired() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please log in again"})
			c.Abort()
			return
		}
		c.Next()
	}
}
