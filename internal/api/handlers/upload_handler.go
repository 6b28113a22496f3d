package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/civichub/community-go/internal/rbac"
	"github.com/civichub/community-go/internal/storage"
	"github.com/civichub/community-go/pkg/response"
	"github.com/civichub/community-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	perms *rbac.Config
}

func NewUploadHandler(perms *rbac.Config) *UploadHandler {
	return &UploadHandler{perms: perms}
}

// Upload accepts a multipart file and stores it under the given prefix
// ("covers", "gallery", ...). Admin content editors use the returned key in
// create/update payloads.
func (h *UploadHandler) Upload(c *gin.Context) {
	prefix := c.DefaultPostForm("prefix", "uploads")

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "No file provided"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Failed to read file"})
		return
	}
	defer src.Close()

	key, err := storage.Upload(c.Request.Context(), prefix, file.Filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to store file"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"key": key})
}

// Download redirects to a short-lived presigned URL for a stored object.
// Resume objects carry applicant data, so on top of the route's gate the key
// prefix "resumes" requires the hiring permission.
func (h *UploadHandler) Download(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Missing key"})
		return
	}

	if strings.SplitN(key, "/", 2)[0] == "resumes" {
		role := utils.GetRoleFromContext(c)
		if h.perms.Gate(role, rbac.PermHiring) != rbac.Granted {
			c.JSON(http.StatusForbidden, response.DeniedResponse{
				Message: "You do not have access to this admin section yet.",
			})
			return
		}
	}

	url, err := storage.PresignedURL(c.Request.Context(), key, 15*time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to sign URL"})
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, url)
}
