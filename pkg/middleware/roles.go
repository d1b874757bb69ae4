package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sitewerk/sitewerk/ent"
	"github.com/sitewerk/sitewerk/ent/user"
	"github.com/sitewerk/sitewerk/pkg/models"
)

// RequireAdmin middleware ensures the user has the admin role
func RequireAdmin(db *ent.Client) echo.MiddlewareFunc {
	return requireRole(db, user.RoleAdmin)
}

// RequireSales middleware ensures the user has the sales or admin role.
// Prospect ingestion and preview generation are internal sales tooling.
func RequireSales(db *ent.Client) echo.MiddlewareFunc {
	return requireRole(db, user.RoleSales, user.RoleAdmin)
}

func requireRole(db *ent.Client, roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Get user ID from context (set by JWT middleware)
			userID, ok := c.Get("user_id").(int)
			if !ok {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "unauthorized",
					Message: "Authentication required",
				})
			}

			userData, err := db.User.Get(c.Request().Context(), userID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "user_not_found",
					Message: "User not found",
				})
			}

			allowed := false
			for _, r := range roles {
				if userData.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				return c.JSON(http.StatusForbidden, models.ErrorResponse{
					Error:   "forbidden",
					Message: "Insufficient permissions",
				})
			}

			c.Set("user_role", string(userData.Role))
			return next(c)
		}
	}
}
