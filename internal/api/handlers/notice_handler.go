package handlers

import (
	"errors"
	"net/http"

	"github.com/civichub/community-go/internal/application"
	"github.com/civichub/community-go/internal/domain/form"
	"github.com/civichub/community-go/internal/domain/notice"
	"github.com/civichub/community-go/pkg/response"
	"github.com/civichub/community-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type NoticeHandler struct {
	service *application.NoticeService
}

func NewNoticeHandler(service *application.NoticeService) *NoticeHandler {
	return &NoticeHandler{service: service}
}

func (h *NoticeHandler) List(c *gin.Context) {
	var filter notice.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	notices, err := h.service.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, notices)
}

func (h *NoticeHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	n, err := h.service.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *NoticeHandler) Create(c *gin.Context) {
	var input notice.CreateNoticeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	n, err := h.service.Create(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (h *NoticeHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input notice.UpdateNoticeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	n, err := h.service.Update(id, input)
	if err != nil {
		if errors.Is(err, application.ErrNoticeNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *NoticeHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, application.ErrNoticeNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "deleted"})
}

// GetForm serves the notice's form definition to the public signup page.
func (h *NoticeHandler) GetForm(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	def, err := h.service.GetForm(id)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrNoticeNotFound), errors.Is(err, application.ErrNoForm):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, def)
}

// AttachForm installs or replaces the notice's form definition.
func (h *NoticeHandler) AttachForm(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input form.DefinitionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	def, err := h.service.AttachForm(id, input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrNoticeNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, form.ErrEmptyLabel),
			errors.Is(err, form.ErrDuplicateLabel),
			errors.Is(err, form.ErrUnknownFieldType),
			errors.Is(err, form.ErrOptionsNotAllowed),
			errors.Is(err, form.ErrNoOptions):
			c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, def)
}

func (h *NoticeHandler) DetachForm(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	if err := h.service.DetachForm(id); err != nil {
		switch {
		case errors.Is(err, application.ErrNoticeNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrNoForm):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "form removed"})
}
