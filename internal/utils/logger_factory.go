package utils

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logLevelDebugStringConstant          = "debug"
	logLevelInfoStringConstant           = "info"
	logLevelWarnStringConstant           = "warn"
	logLevelErrorStringConstant          = "error"
	logFormatStructuredStringConstant    = "structured"
	logFormatConsoleStringConstant       = "console"
	unsupportedLogLevelTemplateConstant  = "unsupported log level: %s"
	unsupportedLogFormatTemplateConstant = "unsupported log format: %s"
	consoleTimeLayoutConstant            = "15:04:05"
)

// LogLevel enumerates supported logging granularities.
type LogLevel string

// Exported log level constants for reuse across packages.
const (
	LogLevelDebug LogLevel = LogLevel(logLevelDebugStringConstant)
	LogLevelInfo  LogLevel = LogLevel(logLevelInfoStringConstant)
	LogLevelWarn  LogLevel = LogLevel(logLevelWarnStringConstant)
	LogLevelError LogLevel = LogLevel(logLevelErrorStringConstant)
)

// LogFormat enumerates supported logger output encodings.
type LogFormat string

// Exported log format constants for reuse across packages.
const (
	LogFormatStructured LogFormat = LogFormat(logFormatStructuredStringConstant)
	LogFormatConsole    LogFormat = LogFormat(logFormatConsoleStringConstant)
)

var logLevelMapping = map[LogLevel]zapcore.Level{
	LogLevelDebug: zapcore.DebugLevel,
	LogLevelInfo:  zapcore.InfoLevel,
	LogLevelWarn:  zapcore.WarnLevel,
	LogLevelError: zapcore.ErrorLevel,
}

// LogLevelChoices lists the accepted log level names.
func LogLevelChoices() []string {
	return []string{logLevelDebugStringConstant, logLevelInfoStringConstant, logLevelWarnStringConstant, logLevelErrorStringConstant}
}

// LogFormatChoices lists the accepted log format names.
func LogFormatChoices() []string {
	return []string{logFormatStructuredStringConstant, logFormatConsoleStringConstant}
}

// UnmarshalText normalizes and validates a configured log level.
func (level *LogLevel) UnmarshalText(text []byte) error {
	candidate := LogLevel(strings.ToLower(strings.TrimSpace(string(text))))
	if _, supported := logLevelMapping[candidate]; !supported {
		return fmt.Errorf(unsupportedLogLevelTemplateConstant, string(text))
	}
	*level = candidate
	return nil
}

// UnmarshalText normalizes and validates a configured log format.
func (format *LogFormat) UnmarshalText(text []byte) error {
	candidate := LogFormat(strings.ToLower(strings.TrimSpace(string(text))))
	if candidate != LogFormatStructured && candidate != LogFormatConsole {
		return fmt.Errorf(unsupportedLogFormatTemplateConstant, string(text))
	}
	*format = candidate
	return nil
}

// DefaultLogFormat picks console output for an interactive terminal and structured output otherwise.
func DefaultLogFormat(output *os.File) LogFormat {
	if output != nil && (isatty.IsTerminal(output.Fd()) || isatty.IsCygwinTerminal(output.Fd())) {
		return LogFormatConsole
	}
	return LogFormatStructured
}

// LoggerFactory builds zap.Logger instances with consistent configuration.
type LoggerFactory struct {
	output io.Writer
}

// NewLoggerFactory constructs a factory whose loggers write to standard error.
func NewLoggerFactory() *LoggerFactory {
	return NewLoggerFactoryWithOutput(os.Stderr)
}

// NewLoggerFactoryWithOutput constructs a factory whose loggers write to output.
func NewLoggerFactoryWithOutput(output io.Writer) *LoggerFactory {
	if output == nil {
		output = os.Stderr
	}
	return &LoggerFactory{output: output}
}

// CreateLogger produces a zap.Logger honoring the requested log level and format.
func (factory *LoggerFactory) CreateLogger(requestedLogLevel LogLevel, requestedLogFormat LogFormat) (*zap.Logger, error) {
	zapLogLevel, levelExists := logLevelMapping[requestedLogLevel]
	if !levelExists {
		return nil, fmt.Errorf(unsupportedLogLevelTemplateConstant, requestedLogLevel)
	}

	var encoder zapcore.Encoder
	switch requestedLogFormat {
	case LogFormatStructured:
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case LogFormatConsole:
		encoderConfiguration := zap.NewDevelopmentEncoderConfig()
		encoderConfiguration.EncodeTime = zapcore.TimeEncoderOfLayout(consoleTimeLayoutConstant)
		encoderConfiguration.EncodeCaller = nil
		encoderConfiguration.CallerKey = zapcore.OmitKey
		encoder = zapcore.NewConsoleEncoder(encoderConfiguration)
	default:
		return nil, fmt.Errorf(unsupportedLogFormatTemplateConstant, requestedLogFormat)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(factory.output)), zap.NewAtomicLevelAt(zapLogLevel))
	return zap.New(core), nil
}
