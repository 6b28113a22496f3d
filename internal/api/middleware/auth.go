package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/civichub/community-go/internal/rbac"
	"github.com/civichub/community-go/pkg/response"
	"github.com/civichub/community-go/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Auth wraps the permission tables behind gin middleware. The tables are
// injected rather than read from a package global so tests can run several
// role configurations side by side.
type Auth struct {
	perms *rbac.Config
}

func NewAuth(perms *rbac.Config) *Auth {
	return &Auth{perms: perms}
}

// Permissions exposes the injected tables, e.g. for the tabs endpoint.
func (a *Auth) Permissions() *rbac.Config {
	return a.perms
}

// Require gates a route on one permission key. The three-way outcome maps
// onto HTTP like this: an unknown role gets 404 so the route's existence is
// not leaked, a known role without the permission gets a calm 403 notice,
// and a granted role passes through.
func (a *Auth) Require(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := utils.GetRoleFromContext(c)

		switch a.perms.Gate(role, permission) {
		case rbac.Granted:
			c.Next()
		case rbac.Denied:
			c.AbortWithStatusJSON(http.StatusForbidden, response.DeniedResponse{
				Message: "You do not have access to this admin section yet.",
			})
		default:
			c.AbortWithStatusJSON(http.StatusNotFound, response.ErrorResponse{
				Error: "not found",
			})
		}
	}
}

// RequireTab gates a route on the permission of an admin tab.
func (a *Auth) RequireTab(tabID string) gin.HandlerFunc {
	return a.Require(a.perms.TabPermission(tabID))
}

// LoggingMiddleware logs requests (placeholder; hook for real logging)
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
	}
}

// CORSMiddleware allows local frontends and skips websocket upgrades.
func CORSMiddleware() gin.HandlerFunc {
	config := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost:") ||
				strings.HasPrefix(origin, "http://127.0.0.1:")
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	corsHandler := cors.New(config)
	return func(c *gin.Context) {
		upgrade := c.GetHeader("Upgrade")
		if strings.EqualFold(upgrade, "websocket") {
			c.Next()
			return
		}
		corsHandler(c)
	}
}
