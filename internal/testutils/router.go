package testutils

import (
	"github.com/civichub/community-go/internal/api/handlers"
	"github.com/civichub/community-go/internal/api/middleware"
	"github.com/civichub/community-go/internal/api/routes"
	"github.com/civichub/community-go/internal/application"
	"github.com/civichub/community-go/internal/rbac"
	"github.com/gin-gonic/gin"
)

func SetupRouter(svc *application.Services, perms *rbac.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, handlers.New(svc, perms), middleware.NewAuth(perms))
	return r
}
