package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/civichub/community-go/internal/api/middleware"
	"github.com/civichub/community-go/internal/application"
	"github.com/civichub/community-go/internal/config"
	"github.com/civichub/community-go/internal/config/db"
	"github.com/civichub/community-go/internal/domain/user"
	"github.com/civichub/community-go/internal/rbac"
	"github.com/civichub/community-go/internal/repository"
	"github.com/civichub/community-go/internal/testutils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/lib/pq"
)

var (
	router *gin.Engine
	gormDB *gorm.DB
)

func TestMain(m *testing.M) {
	var cleanup func()
	gormDB, cleanup = testutils.SetupPostgresForIntegration()
	defer cleanup()

	gormDB.Logger = logger.New(
		log.New(io.Discard, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Silent,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	config.LoadConfig()
	middleware.Init()
	db.InitWithGormDB(gormDB)

	repos := repository.New(gormDB)
	services := application.New(repos)
	router = testutils.SetupRouter(services, rbac.Default())

	// setup
	registerUserForTests("alice", "123456", user.RoleAdmin)
	registerUserForTests("edgar", "123456", user.RoleEditor)
	registerUserForTests("moira", "123456", user.RoleModerator)
	registerUserForTests("visitor", "123456", user.RoleMember)

	code := m.Run()
	os.Exit(code)
}

// --- Helper functions ---
// doRequest makes a JSON request against the test router. A non-zero
// expectStatus is asserted.
func doRequest(t *testing.T, method, path string, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	var req *http.Request

	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		reqBody, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if expectStatus != 0 {
		require.Equal(t, expectStatus, w.Code,
			fmt.Sprintf("expected %d, got %d, body=%s", expectStatus, w.Code, w.Body.String()))
	}

	return w
}

func registerUserForTests(username, password, role string) {
	w := httptest.NewRecorder()
	reqBody := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	req, _ := http.NewRequest("POST", "/register", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if role != user.RoleMember {
		gormDB.Model(&user.User{}).Where("username = ?", username).Update("role", role)
	}
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
