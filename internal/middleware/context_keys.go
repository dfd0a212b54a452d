package middleware

import "github.com/gin-gonic/gin"

// operatorKey is the key used to store the authenticated operator's
// name in the request context.
const operatorKey = contextKey("operator")

// GetOperatorFromContext retrieves the authenticated operator name from
// the Gin context. It returns the name and a boolean indicating if it
// was found.
func GetOperatorFromContext(c *gin.Context) (string, bool) {
	val := c.Request.Context().Value(operatorKey)
	if val == nil {
		return "", false
	}
	operator, ok := val.(string)
	if !ok {
		return "", false
	}
	return operator, true
}
