package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/config"
	"github.com/pkg/errors"
)

// Newは設定からslog.Loggerを作る。
// CLIの出力（stdout）と混ざらないようにstderrへ書く。
func New(cfg *config.Config) (*slog.Logger, error) {
	return NewWithWriter(cfg, os.Stderr)
}

func NewWithWriter(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Log.Pretty {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("env", cfg.Env)), nil
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
