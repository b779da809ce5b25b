package main

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ErrUnknownLogLevel = errors.New("unknown log level (known: debug, info, warn, error)")

// LogLevel is the value behind the --verbosity flag.
type LogLevel int

var _ pflag.Value = (*LogLevel)(nil)

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

var levels = [...]struct {
	name string
	zap  zapcore.Level
}{
	DEBUG: {"debug", zapcore.DebugLevel},
	INFO:  {"info", zapcore.InfoLevel},
	WARN:  {"warn", zapcore.WarnLevel},
	ERROR: {"error", zapcore.ErrorLevel},
}

func (l LogLevel) String() string {
	return levels[l].name
}

// Set accepts the lower or upper case level name.
func (l *LogLevel) Set(s string) error {
	for level, info := range levels {
		if s == info.name || s == strings.ToUpper(info.name) {
			*l = LogLevel(level)
			return nil
		}
	}
	return ErrUnknownLogLevel
}

func (l *LogLevel) Type() string {
	return "LogLevel"
}

const timeFormat = "15:04:05.000 02/01/2006 -07:00"

// NewZapLogger builds a console logger writing to stderr so command output
// on stdout stays machine readable.
func NewZapLogger(level LogLevel) (*zap.SugaredLogger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.Sampling = nil
	config.OutputPaths = []string{"stderr"}
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Local().Format(timeFormat))
	}
	config.Level.SetLevel(levels[level].zap)

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
