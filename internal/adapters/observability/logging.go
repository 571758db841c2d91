package observability

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the process-wide logger, tagged with the service name so
// travel log lines are filterable in shared sinks. APP_ENV=dev (or
// development) uses a human-friendly console writer; everything else is JSON.
func NewLogger(env string) zerolog.Logger { return newLogger(os.Stdout, env) }

func newLogger(out io.Writer, env string) zerolog.Logger {
	if env == "dev" || env == "development" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).With().Timestamp().Str("service", "local_travel").Logger()
}
