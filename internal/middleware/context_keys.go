package middleware

import "github.com/gin-gonic/gin"

// employeeIDKey is the key used to store the authenticated employee's ID in the Gin context.
// Using a custom type prevents collisions.
const employeeIDKey = contextKey("employeeID")

// GetEmployeeIDFromContext retrieves the authenticated employee ID from the Gin context.
// It returns the employee ID and a boolean indicating if it was found.
func GetEmployeeIDFromContext(c *gin.Context) (string, bool) {
	employeeIDVal, exists := c.Get(string(employeeIDKey))
	if !exists {
		// check in the request context as well
		ctxVal := c.Request.Context().Value(employeeIDKey)
		if ctxVal != nil {
			return ctxVal.(string), true
		}
		return "", false
	}

	employeeID, ok := employeeIDVal.(string)
	if !ok {
		// This should not happen if the auth middleware sets it correctly
		return "", false
	}

	return employeeID, true
}
