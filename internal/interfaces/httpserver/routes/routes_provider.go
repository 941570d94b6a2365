package routes

import (
	"model-gateway/services/gemini-adapter/internal/interfaces/httpserver/handlers/chathandler"
	"model-gateway/services/gemini-adapter/internal/interfaces/httpserver/handlers/modelhandler"
	v1 "model-gateway/services/gemini-adapter/internal/interfaces/httpserver/routes/v1"
	"model-gateway/services/gemini-adapter/internal/interfaces/httpserver/routes/v1/chat"
	"model-gateway/services/gemini-adapter/internal/interfaces/httpserver/routes/v1/model"

	"github.com/google/wire"
)

var RouteProvider = wire.NewSet(
	// Handlers
	chathandler.NewChatHandler,
	modelhandler.NewModelHandler,

	// Routes
	v1.NewV1Route,
	chat.NewChatCompletionRoute,
	model.NewModelRoute,
)
