package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gfdmit/board-service/internal/apperror"
	"github.com/gfdmit/board-service/internal/repository"
)

type createBoardRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type updateBoardRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (h *Handler) CreateBoard(c *gin.Context) {
	var req createBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abort(c, apperror.BadRequest("invalid request body"))
		return
	}

	board, err := h.svc.CreateBoard(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		h.abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, board)
}

func (h *Handler) GetBoards(c *gin.Context) {
	boards, err := h.svc.GetBoards(c.Request.Context())
	if err != nil {
		h.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, boards)
}

func (h *Handler) GetBoard(c *gin.Context) {
	id, err := pathID(c, "boardId")
	if err != nil {
		h.abort(c, err)
		return
	}

	board, err := h.svc.GetBoard(c.Request.Context(), id)
	if err != nil {
		h.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

func (h *Handler) UpdateBoard(c *gin.Context) {
	id, err := pathID(c, "boardId")
	if err != nil {
		h.abort(c, err)
		return
	}

	var req updateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abort(c, apperror.BadRequest("invalid request body"))
		return
	}

	board, err := h.svc.UpdateBoard(c.Request.Context(), id, repository.BoardUpdate{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

func (h *Handler) DeleteBoard(c *gin.Context) {
	id, err := pathID(c, "boardId")
	if err != nil {
		h.abort(c, err)
		return
	}

	if err := h.svc.DeleteBoard(c.Request.Context(), id); err != nil {
		h.abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetBoardPosts lists the board's active posts. The board id is only a
// filter here, so posts of a deleted board stay listable.
func (h *Handler) GetBoardPosts(c *gin.Context) {
	id, err := pathID(c, "boardId")
	if err != nil {
		h.abort(c, err)
		return
	}

	posts, err := h.svc.GetPosts(c.Request.Context(), &id)
	if err != nil {
		h.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}
