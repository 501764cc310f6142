package v1

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/gfdmit/board-service/internal/apperror"
	"github.com/gfdmit/board-service/internal/handlers/ws"
	"github.com/gfdmit/board-service/internal/logging"
	"github.com/gfdmit/board-service/internal/service"
)

type Handler struct {
	svc    *service.Service
	hub    *ws.Hub
	logger zerolog.Logger
}

func NewHandler(svc *service.Service, hub *ws.Hub) *Handler {
	return &Handler{
		svc:    svc,
		hub:    hub,
		logger: logging.New("http"),
	}
}

// abort ends the request with the JSON error body for err. Errors that are
// not apperrors become a generic 500; their cause is logged, never sent.
func (h *Handler) abort(c *gin.Context, err error) {
	apperr := apperror.FromError(err)
	if apperr.IsServerError() {
		h.logger.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
	}
	c.AbortWithStatusJSON(apperr.StatusCode, apperr)
}

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperror.BadRequest(fmt.Sprintf("%s must be an integer id", name))
	}
	return id, nil
}

// Subscribe turns GET /ws?board_id= into an event stream for one board. The
// board must exist; after the upgrade the connection only ever receives.
func (h *Handler) Subscribe(c *gin.Context) {
	boardID, err := strconv.ParseInt(c.Query("board_id"), 10, 64)
	if err != nil {
		h.abort(c, apperror.BadRequest("board_id must be an integer id"))
		return
	}

	if _, err := h.svc.GetBoard(c.Request.Context(), boardID); err != nil {
		h.abort(c, err)
		return
	}

	// Upgrade failures have already written their own response.
	_ = h.hub.Subscribe(c.Writer, c.Request, boardID)
}
