package chat

import (
	"github.com/gin-gonic/gin"

	"model-gateway/services/gemini-adapter/internal/interfaces/httpserver/handlers/chathandler"
)

type ChatCompletionRoute struct {
	chatHandler *chathandler.ChatHandler
}

func NewChatCompletionRoute(chatHandler *chathandler.ChatHandler) *ChatCompletionRoute {
	return &ChatCompletionRoute{
		chatHandler: chatHandler,
	}
}

func (route *ChatCompletionRoute) RegisterRouter(router gin.IRouter) {
	chatRoute := router.Group("chat")
	chatRoute.POST("/completions", route.chatHandler.CreateChatCompletion)
}
