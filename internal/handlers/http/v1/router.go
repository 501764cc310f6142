package v1

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	gql "github.com/gfdmit/board-service/internal/handlers/http/v1/graphql"
	"github.com/gfdmit/board-service/internal/handlers/ws"
	"github.com/gfdmit/board-service/internal/logging"
	"github.com/gfdmit/board-service/internal/metrics"
	"github.com/gfdmit/board-service/internal/service"
)

func New(svc *service.Service, m *metrics.Metrics, hub *ws.Hub) (*gin.Engine, error) {
	var (
		router = gin.New()
	)

	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposeHeaders:    []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300 * time.Second,
	}))
	router.Use(RequestID())
	router.Use(RequestLogger(logging.New("http")))
	router.Use(m.Middleware())

	gqlHandler, err := gql.New(svc)
	if err != nil {
		return nil, err
	}

	h := NewHandler(svc, hub)

	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))
	router.GET("/ws", h.Subscribe)
	router.Any("/graphql", gin.WrapH(gqlHandler))

	boardGroup := router.Group("/boards")
	{
		boardGroup.POST("", h.CreateBoard)
		boardGroup.GET("", h.GetBoards)
		boardGroup.GET("/:boardId", h.GetBoard)
		boardGroup.PUT("/:boardId", h.UpdateBoard)
		boardGroup.DELETE("/:boardId", h.DeleteBoard)
		boardGroup.GET("/:boardId/posts", h.GetBoardPosts)
	}

	postGroup := router.Group("/posts")
	{
		postGroup.POST("", h.CreatePost)
		postGroup.GET("", h.GetPosts)
		postGroup.GET("/:postId", h.GetPost)
		postGroup.PUT("/:postId", h.UpdatePost)
		postGroup.DELETE("/:postId", h.DeletePost)
	}

	return router, nil
}
