package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/civichub/community-go/internal/application"
	"github.com/civichub/community-go/internal/domain/form"
	"github.com/civichub/community-go/pkg/response"
	"github.com/civichub/community-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	service *application.SubmissionService
}

func NewSubmissionHandler(service *application.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// Submit is the public endpoint visitors post their answers to.
func (h *SubmissionHandler) Submit(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input form.SubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	sub, err := h.service.Submit(id, input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrNoticeNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrNoForm):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, form.ErrFormClosed):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, form.ErrMissingRequired),
			errors.Is(err, form.ErrUnknownAnswerKey),
			errors.Is(err, form.ErrInvalidAnswer),
			errors.Is(err, form.ErrOptionNotInList):
			c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// List returns raw submission records for the admin review screen.
func (h *SubmissionHandler) List(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	subs, err := h.service.List(id, c.Query("q"))
	if err != nil {
		if errors.Is(err, application.ErrNoticeNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, subs)
}

// Table returns the tabular view (header + rows) used for on-screen review.
func (h *SubmissionHandler) Table(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	header, rows, err := h.service.Table(id, c.Query("q"))
	if err != nil {
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
	c.JSON(http.StatusOK, gin.H{"header": header, "rows": rows})
}

// ExportCSV streams the submission table as a CSV attachment.
func (h *SubmissionHandler) ExportCSV(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	// Buffer so an error never leaks half a CSV with attachment headers.
	var buf bytes.Buffer
	if err := h.service.ExportCSV(id, c.Query("q"), &buf); err != nil {
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

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=submissions-%d.csv", id))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
