package domain

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"quill-server/internal/config"
	"quill-server/internal/domain/chat"
	"quill-server/internal/domain/session"
)

// ProvideTranscriptFactory builds the per-conversation controller
// factory. Every new session gets its own controller seeded with the
// configured system prompt; the completion capability and logger are
// injected, never looked up ambiently.
func ProvideTranscriptFactory(completer chat.Completer, cfg *config.Config, log zerolog.Logger) session.Factory {
	return func() *chat.TranscriptService {
		return chat.NewTranscriptService(completer, log, cfg.SystemPrompt)
	}
}

// ProvideSessionRegistry builds the live-session registry.
func ProvideSessionRegistry(factory session.Factory, cfg *config.Config, log zerolog.Logger) *session.Registry {
	return session.NewRegistry(factory, cfg.SessionIdleTimeout, log)
}

// ServiceProvider provides all domain services
var ServiceProvider = wire.NewSet(
	ProvideTranscriptFactory,
	ProvideSessionRegistry,
)
