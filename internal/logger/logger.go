package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init routes the global logger to stdout as JSON lines.
func Init() {
	InitWithWriter(os.Stdout)
}

// InitWithWriter is Init with an explicit sink, used by tests.
func InitWithWriter(w io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	log.Info().Msg("logger initialized")
}

// SetLevel applies a textual level ("debug", "info", ...). Unknown
// values leave the current level untouched and are reported.
func SetLevel(level string) {
	if level == "" {
		return
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		Warn("invalid log level", map[string]any{
			"level": level,
			"error": err.Error(),
		})
		return
	}
	zerolog.SetGlobalLevel(lvl)
}

func Info(msg string, fields map[string]any) {
	log.Info().Fields(fields).Msg(msg)
}

func Warn(msg string, fields map[string]any) {
	log.Warn().Fields(fields).Msg(msg)
}

func Error(msg string, fields map[string]any) {
	log.Error().Fields(fields).Msg(msg)
}

func Fatal(msg string, fields map[string]any) {
	log.Fatal().Fields(fields).Msg(msg)
}
