package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

const (
	HeaderAdminToken = "X-Admin-Token"
	CtxAdminID       = "admin_id"
)

// AdminOnly guards operator routes with a shared token. An empty token
// closes the routes entirely.
func AdminOnly(token string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		got := c.GetHeader(HeaderAdminToken)
		if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden,
				ginext.H{"success": false, "error": "forbidden"},
			)
			return
		}
		c.Set(CtxAdminID, "admin")
		c.Next()
	}
}
