// Package logging builds the zap logger used for debug output.
//
// Logging is off unless --debug or AIDER_VERTEX_DEBUG is set; user-facing
// output (reports, prompts, errors) never goes through the logger.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/NielsdaWheelz/aider-vertex/internal/tty"
)

// New returns a development console logger writing to w when debug is true,
// and a no-op logger otherwise.
func New(w io.Writer, debug bool) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}

	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if tty.IsTerminalWriter(w) {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zapcore.DebugLevel,
	)
	return zap.New(core).Named("aider-vertex")
}
