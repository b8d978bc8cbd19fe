package routes

import (
	"github.com/google/wire"

	"quill-server/internal/interfaces/httpserver/handlers/chathandler"
	"quill-server/internal/interfaces/httpserver/routes/pages"
	v1 "quill-server/internal/interfaces/httpserver/routes/v1"
	"quill-server/internal/interfaces/httpserver/routes/v1/chat"
)

var RouteProvider = wire.NewSet(
	// Handlers
	chathandler.NewChatHandler,

	// Routes
	pages.NewPagesRoute,
	v1.NewV1Route,
	chat.NewChatRoute,
)
