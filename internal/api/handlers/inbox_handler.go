package handlers

import (
	"errors"
	"net/http"

	"github.com/civichub/community-go/internal/application"
	"github.com/civichub/community-go/internal/domain/inbox"
	"github.com/civichub/community-go/internal/storage"
	"github.com/civichub/community-go/pkg/response"
	"github.com/civichub/community-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type InboxHandler struct {
	service *application.InboxService
}

func NewInboxHandler(service *application.InboxService) *InboxHandler {
	return &InboxHandler{service: service}
}

// SubmitContact is the public contact-us endpoint.
func (h *InboxHandler) SubmitContact(c *gin.Context) {
	var input inbox.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	m, err := h.service.SubmitContact(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *InboxHandler) ListContacts(c *gin.Context) {
	var filter inbox.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	msgs, err := h.service.ListContacts(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func (h *InboxHandler) MarkContactReviewed(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	m, err := h.service.MarkContactReviewed(id)
	if err != nil {
		h.inboxError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *InboxHandler) DeleteContact(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	if err := h.service.DeleteContact(id); err != nil {
		h.inboxError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "deleted"})
}

// SubmitApplication is the public hiring endpoint. It takes multipart form
// data so the resume file can ride along with the applicant fields.
func (h *InboxHandler) SubmitApplication(c *gin.Context) {
	var input inbox.HiringInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var resumeKey string
	if file, err := c.FormFile("resume"); err == nil {
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Failed to read resume"})
			return
		}
		defer src.Close()

		resumeKey, err = storage.Upload(c.Request.Context(), "resumes", file.Filename, src, file.Size, file.Header.Get("Content-Type"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to store resume"})
			return
		}
	}

	a, err := h.service.SubmitApplication(input, resumeKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *InboxHandler) ListApplications(c *gin.Context) {
	var filter inbox.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	apps, err := h.service.ListApplications(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *InboxHandler) MarkApplicationReviewed(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	a, err := h.service.MarkApplicationReviewed(id)
	if err != nil {
		h.inboxError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *InboxHandler) DeleteApplication(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	if err := h.service.DeleteApplication(id); err != nil {
		h.inboxError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "deleted"})
}

// SubmitFeedback is the public feedback endpoint.
func (h *InboxHandler) SubmitFeedback(c *gin.Context) {
	var input inbox.FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	f, err := h.service.SubmitFeedback(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, f)
}

func (h *InboxHandler) ListFeedback(c *gin.Context) {
	var filter inbox.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	items, err := h.service.ListFeedback(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *InboxHandler) MarkFeedbackReviewed(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	f, err := h.service.MarkFeedbackReviewed(id)
	if err != nil {
		h.inboxError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *InboxHandler) DeleteFeedback(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	if err := h.service.DeleteFeedback(id); err != nil {
		h.inboxError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "deleted"})
}

func (h *InboxHandler) inboxError(c *gin.Context, err error) {
	if errors.Is(err, application.ErrInboxItemNotFound) {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
}
