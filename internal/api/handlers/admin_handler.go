package handlers

import (
	"net/http"

	"github.com/civichub/community-go/internal/rbac"
	"github.com/civichub/community-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	perms *rbac.Config
}

func NewAdminHandler(perms *rbac.Config) *AdminHandler {
	return &AdminHandler{perms: perms}
}

// Tabs returns the admin navigation tabs the caller's role may see, in
// configured order. Tabs the role cannot see are simply absent.
func (h *AdminHandler) Tabs(c *gin.Context) {
	role := utils.GetRoleFromContext(c)
	c.JSON(http.StatusOK, gin.H{"tabs": h.perms.AccessibleTabs(role)})
}
