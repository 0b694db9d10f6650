package middleware

import (
	"api/utils/access"
	"api/utils/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireTag guards a route group with the shared access policy table.
// Role mismatches are answered with a redirect to the caller's own
// dashboard rather than an error page; missing sessions redirect to
// login; an authenticated user with a role outside the known set is
// explicitly forbidden.
func RequireTag(tag access.Tag) gin.HandlerFunc {
    return func(c *gin.Context) {
        role := ""
        if user, err := TryGetUser(c); err == nil && user.Role != nil {
            role = user.Role.Name
        }

        switch access.Evaluate(role, tag) {
        case access.Allow:
            c.Next()
        case access.RedirectLogin:
            response.Redirect(c, http.StatusUnauthorized, "Authentication required", "/login")
            c.Abort()
        case access.RedirectDashboard:
            response.Redirect(c, http.StatusSeeOther, "Not available for your role", access.DashboardPath(role))
            c.Abort()
        default:
            response.Error(c, http.StatusForbidden, "Unknown role")
            c.Abort()
        }
    }
}
