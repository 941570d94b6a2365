package v1

import (
	"net/http"

	"model-gateway/services/gemini-adapter/internal/config"
	"model-gateway/services/gemini-adapter/internal/interfaces/httpserver/routes/v1/chat"
	"model-gateway/services/gemini-adapter/internal/interfaces/httpserver/routes/v1/model"

	"github.com/gin-gonic/gin"
)

type V1Route struct {
	model *model.ModelRoute
	chat  *chat.ChatCompletionRoute
}

func NewV1Route(
	model *model.ModelRoute,
	chat *chat.ChatCompletionRoute,
) *V1Route {
	return &V1Route{
		model,
		chat,
	}
}

func (v1Route *V1Route) RegisterRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")
	v1Router.GET("/version", GetVersion)
	v1Router.GET("/healthz", GetHealthz)
	v1Router.GET("/readyz", GetReadyz)

	v1Route.model.RegisterRouter(v1Router)
	v1Route.chat.RegisterRouter(v1Router)
}

// GetVersion returns the current build version of the server.
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": config.Version,
	})
}

// GetHealthz reports liveness to orchestrators and monitoring systems.
func GetHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetReadyz reports whether the service is ready to accept traffic.
func GetReadyz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
