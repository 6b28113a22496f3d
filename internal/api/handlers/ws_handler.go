package handlers

import (
	"errors"
	"net/http"

	"github.com/civichub/community-go/internal/application"
	"github.com/civichub/community-go/pkg/response"
	"github.com/civichub/community-go/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var feedUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSHandler struct {
	service *application.SubmissionService
}

func NewWSHandler(service *application.SubmissionService) *WSHandler {
	return &WSHandler{service: service}
}

// SubmissionFeed upgrades the connection and streams each new submission for
// the notice as a JSON message until the client disconnects.
func (h *WSHandler) SubmissionFeed(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	// Reject before upgrading so a bad notice ID gets a plain HTTP error.
	if _, err := h.service.List(id, ""); err != nil {
		if errors.Is(err, application.ErrNoticeNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	conn, err := feedUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ch := h.service.Feed.Subscribe(id)
	defer h.service.Feed.Unsubscribe(id, ch)

	// Reader loop only to detect the client going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case sub, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteJSON(sub); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
