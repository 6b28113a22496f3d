package testutils

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/civichub/community-go/internal/domain/blog"
	"github.com/civichub/community-go/internal/domain/form"
	"github.com/civichub/community-go/internal/domain/gallery"
	"github.com/civichub/community-go/internal/domain/inbox"
	"github.com/civichub/community-go/internal/domain/notice"
	"github.com/civichub/community-go/internal/domain/team"
	"github.com/civichub/community-go/internal/domain/user"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func migrate(db *gorm.DB) {
	err := db.AutoMigrate(
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
	)
	if err != nil {
		log.Fatal(err)
	}
}

// SetupPostgresForIntegration spins up a throwaway postgres (or connects to
// TEST_DB_DSN when set) and migrates the full schema.
func SetupPostgresForIntegration() (*gorm.DB, func()) {
	// Check if an external DB DSN is provided
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatal(err)
		}
		migrate(db)
		return db, func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "community",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/community?sslmode=disable", host, port.Port())

	// retry db connect
	var db *gorm.DB
	for i := 0; i < 10; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		log.Fatal(err)
	}
	migrate(db)

	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		_ = pg.Terminate(ctx)
	}

	return db, cleanup
}
