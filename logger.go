package highlight

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the package-wide structured logger. index.go and search.go use it
// in place of the teacher's log/slog call sites, keeping the same
// key/value field idiom but writing through zerolog, the structured logger
// the rest of this module's pack standardizes on.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// SetLogLevel adjusts the package logger's minimum level, e.g. from a CLI
// --verbose flag.
func SetLogLevel(level zerolog.Level) {
	Log = Log.Level(level)
}
