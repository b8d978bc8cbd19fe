package infrastructure

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"quill-server/internal/config"
	"quill-server/internal/domain/chat"
	"quill-server/internal/infrastructure/crontab"
	"quill-server/internal/infrastructure/inference"
	"quill-server/internal/infrastructure/logger"
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.Load()
}

// ProvideLogger builds the process logger from configuration.
func ProvideLogger(cfg *config.Config) (zerolog.Logger, error) {
	return logger.New(cfg.LogLevel, cfg.LogFormat)
}

// ProvideCompleter wires the hosted chat API client as the domain's
// completion capability.
func ProvideCompleter(cfg *config.Config, log zerolog.Logger) chat.Completer {
	return inference.NewCompletionClient(cfg, log)
}

// Infrastructure holds all infrastructure dependencies
type Infrastructure struct {
	Logger zerolog.Logger
	Config *config.Config
}

// NewInfrastructure creates a new infrastructure instance
func NewInfrastructure(log zerolog.Logger, cfg *config.Config) *Infrastructure {
	return &Infrastructure{
		Logger: log,
		Config: cfg,
	}
}

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	ProvideConfig,
	ProvideLogger,
	ProvideCompleter,
	crontab.NewCrontab,
	NewInfrastructure,
)
