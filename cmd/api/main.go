package main

import (
	"log"

	"github.com/civichub/community-go/internal/api/handlers"
	"github.com/civichub/community-go/internal/api/middleware"
	"github.com/civichub/community-go/internal/api/routes"
	"github.com/civichub/community-go/internal/application"
	"github.com/civichub/community-go/internal/config"
	"github.com/civichub/community-go/internal/config/db"
	"github.com/civichub/community-go/internal/domain/blog"
	"github.com/civichub/community-go/internal/domain/form"
	"github.com/civichub/community-go/internal/domain/gallery"
	"github.com/civichub/community-go/internal/domain/inbox"
	"github.com/civichub/community-go/internal/domain/notice"
	"github.com/civichub/community-go/internal/domain/team"
	"github.com/civichub/community-go/internal/domain/user"
	"github.com/civichub/community-go/internal/rbac"
	"github.com/civichub/community-go/internal/repository"
	"github.com/civichub/community-go/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Load role/tab permission tables (built-in defaults unless overridden)
	perms, err := rbac.Load(config.PermissionFile)
	if err != nil {
		log.Fatalf("Failed to load permission tables: %v", err)
	}

	// Initialize database and object storage connections
	db.Init()
	storage.Init()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&user.User{},
		&notice.Notice{},
		&form.Definition{},
		&form.Field{},
		&form.Submission{},
		&blog.Post{},
		&gallery.Event{},
		&team.Member{},
		&inbox.ContactMessage{},
		&inbox.HiringApplication{},
		&inbox.Feedback{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	repos := repository.New(db.DB)
	services := application.New(repos)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, handlers.New(services, perms), middleware.NewAuth(perms))

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
