package tessellate

import (
	"log/slog"

	"github.com/osuushi/tessellate/internal"
)

// SetLogger configures the logger used by the engine. By default, nothing is
// logged. Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: every sweep event and diagonal, plus per polygon
//     statistics (vertex, piece and triangle counts)
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return internal.Logger()
}
