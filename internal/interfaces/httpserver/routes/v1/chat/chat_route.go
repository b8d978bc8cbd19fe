package chat

import (
	"github.com/gin-gonic/gin"

	"quill-server/internal/interfaces/httpserver/handlers/chathandler"
)

// ChatRoute exposes the turn, transcript and event-stream endpoints by
// delegating to the chat handler.
type ChatRoute struct {
	chatHandler *chathandler.ChatHandler
}

func NewChatRoute(chatHandler *chathandler.ChatHandler) *ChatRoute {
	return &ChatRoute{chatHandler: chatHandler}
}

func (chatRoute *ChatRoute) RegisterRouter(router gin.IRouter) {
	chatRouter := router.Group("/chat")
	chatRouter.POST("/turns", chatRoute.chatHandler.CreateTurn)
	chatRouter.GET("/transcript", chatRoute.chatHandler.GetTranscript)
	chatRouter.GET("/events", chatRoute.chatHandler.StreamEvents)
}
