package v1

import (
	"github.com/gin-gonic/gin"

	"quill-server/internal/interfaces/httpserver/routes/v1/chat"
)

// V1Route groups all /v1 API routes.
type V1Route struct {
	chatRoute *chat.ChatRoute
}

func NewV1Route(chatRoute *chat.ChatRoute) *V1Route {
	return &V1Route{chatRoute: chatRoute}
}

func (v1Route *V1Route) RegisterRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")
	v1Route.chatRoute.RegisterRouter(v1Router)
}
