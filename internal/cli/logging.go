package cli

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/reoring/sirisx/internal/config"
)

// setupLogging configures the global zerolog logger. SIRISX_DEBUG=YES forces
// debug level regardless of configuration.
func setupLogging(cfg config.LogConfig, w io.Writer) {
	if strings.EqualFold(cfg.Format, "json") || os.Getenv("SIRISX_LOG_FORMAT") == "JSON" {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	}

	if os.Getenv("SIRISX_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
		return
	}
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Logger.Level(level)
}
