package middleware

import "github.com/gin-gonic/gin"

// Access levels attached to routes. They are informational: nothing is
// enforced until an authentication layer sets a caller role.
const (
	AccessPublic = "public"
	AccessUser   = "user"
	AccessAdmin  = "admin"
)

const accessKey = "access_level"

// Access tags the route with level for logging and later enforcement.
func Access(level string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(accessKey, level)
		c.Next()
	}
}

// AccessLevel returns the tag set by Access, or AccessPublic.
func AccessLevel(c *gin.Context) string {
	if v := c.GetString(accessKey); v != "" {
		return v
	}
	return AccessPublic
}
