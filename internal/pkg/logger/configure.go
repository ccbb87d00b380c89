package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"

	"seichi.click/gamedata-translator/internal/app/appconfig"
)

// Configure installs the global zerolog logger: a rotated file sink under
// logs/ plus stdout, which is either pretty-printed for humans or raw JSON
// for log collectors depending on LogJsonStdout.
func Configure(conf *appconfig.Config) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	fileWriter := &lumberjack.Logger{
		Filename:   "logs/app.log",
		MaxSize:    128,
		MaxBackups: 10,
		MaxAge:     90,
		Compress:   true,
	}

	var stdoutWriter io.Writer
	if conf.LogJsonStdout {
		stdoutWriter = os.Stdout
	} else {
		stdoutWriter = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339Nano,
		}
	}

	var level zerolog.Level
	if conf.DevMode {
		level = zerolog.TraceLevel
	} else {
		level = zerolog.DebugLevel
	}

	writer := zerolog.MultiLevelWriter(
		fileWriter,
		stdoutWriter,
	)

	log.Logger = zerolog.New(writer).
		With().
		Timestamp().
		Logger().
		Level(level)
}
