package pages

import (
	"github.com/gin-gonic/gin"

	"quill-server/internal/interfaces/httpserver/handlers/chathandler"
)

// PagesRoute serves the browser-facing widget pages.
type PagesRoute struct {
	chatHandler *chathandler.ChatHandler
}

func NewPagesRoute(chatHandler *chathandler.ChatHandler) *PagesRoute {
	return &PagesRoute{chatHandler: chatHandler}
}

func (pagesRoute *PagesRoute) RegisterRouter(router gin.IRouter) {
	router.GET("/", pagesRoute.chatHandler.GetWidget)
}
