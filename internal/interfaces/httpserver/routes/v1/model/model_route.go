package model

import (
	"net/http"
	"strings"

	"model-gateway/services/gemini-adapter/internal/interfaces/httpserver/handlers/modelhandler"
	"model-gateway/services/gemini-adapter/internal/interfaces/httpserver/responses"
	modelresponses "model-gateway/services/gemini-adapter/internal/interfaces/httpserver/responses/model"
	"model-gateway/services/gemini-adapter/internal/utils/platformerrors"

	"github.com/gin-gonic/gin"
)

type ModelRoute struct {
	modelHandler *modelhandler.ModelHandler
}

func NewModelRoute(modelHandler *modelhandler.ModelHandler) *ModelRoute {
	return &ModelRoute{
		modelHandler: modelHandler,
	}
}

func (route *ModelRoute) RegisterRouter(router gin.IRouter) {
	modelsRoute := router.Group("models")
	modelsRoute.GET("", route.GetModels)
	modelsRoute.GET("/*model_id", route.GetModelDetails)
}

// GetModels returns the current model catalog in OpenAI list format.
func (route *ModelRoute) GetModels(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	models := route.modelHandler.ListModels(ctx)
	reqCtx.JSON(http.StatusOK, modelresponses.BuildModelResponseList(models, route.modelHandler.Provider()))
}

// GetModelDetails returns a single catalog entry by id.
func (route *ModelRoute) GetModelDetails(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	// Wildcard param includes leading slash, so trim it
	modelID := strings.TrimPrefix(reqCtx.Param("model_id"), "/")

	m, ok := route.modelHandler.FindModel(ctx, modelID)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeNotFound, "model not found", "7f5d3b19-c8e6-4a20-b474-19d8f6e0c3a5")
		return
	}

	reqCtx.JSON(http.StatusOK, modelresponses.BuildModelResponse(m, route.modelHandler.Provider()))
}
