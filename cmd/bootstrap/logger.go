package bootstrap

import (
	"log/slog"
	"os"

	"go.uber.org/fx"
)

// LoggerModule provides a plain JSON logger for contexts that bypass
// the request logging middleware, such as the e2e app graph.
var LoggerModule = fx.Module("logger",
	fx.Provide(NewLogger),
)

func NewLogger() *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	// Read stores log malformed rows through the default logger.
	slog.SetDefault(logger)
	return logger
}
