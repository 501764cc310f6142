package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gfdmit/board-service/internal/apperror"
	"github.com/gfdmit/board-service/internal/handlers/ws"
	"github.com/gfdmit/board-service/internal/repository"
)

type createPostRequest struct {
	BoardID int64  `json:"board_id" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type updatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (h *Handler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abort(c, apperror.BadRequest("invalid request body"))
		return
	}

	post, err := h.svc.CreatePost(c.Request.Context(), req.BoardID, req.Title, req.Content)
	if err != nil {
		h.abort(c, err)
		return
	}

	h.hub.Broadcast(post.BoardID, ws.Event{Event: ws.EventPostCreated, Post: post})
	c.JSON(http.StatusCreated, post)
}

func (h *Handler) GetPosts(c *gin.Context) {
	var boardID *int64
	if raw := c.Query("board_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.abort(c, apperror.BadRequest("board_id must be an integer id"))
			return
		}
		boardID = &id
	}

	posts, err := h.svc.GetPosts(c.Request.Context(), boardID)
	if err != nil {
		h.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) GetPost(c *gin.Context) {
	id, err := pathID(c, "postId")
	if err != nil {
		h.abort(c, err)
		return
	}

	post, err := h.svc.GetPost(c.Request.Context(), id)
	if err != nil {
		h.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) UpdatePost(c *gin.Context) {
	id, err := pathID(c, "postId")
	if err != nil {
		h.abort(c, err)
		return
	}

	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abort(c, apperror.BadRequest("invalid request body"))
		return
	}

	post, err := h.svc.UpdatePost(c.Request.Context(), id, repository.PostUpdate{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.abort(c, err)
		return
	}

	h.hub.Broadcast(post.BoardID, ws.Event{Event: ws.EventPostUpdated, Post: post})
	c.JSON(http.StatusOK, post)
}

func (h *Handler) DeletePost(c *gin.Context) {
	id, err := pathID(c, "postId")
	if err != nil {
		h.abort(c, err)
		return
	}

	// Read the post first so the event can carry its last state.
	post, err := h.svc.GetPost(c.Request.Context(), id)
	if err != nil {
		h.abort(c, err)
		return
	}

	if err := h.svc.DeletePost(c.Request.Context(), id); err != nil {
		h.abort(c, err)
		return
	}

	h.hub.Broadcast(post.BoardID, ws.Event{Event: ws.EventPostDeleted, Post: post})
	c.Status(http.StatusNoContent)
}
