package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "BASEMASTER_LOG_LEVEL"

// Initialize creates the global logger.
// If level is empty, BASEMASTER_LOG_LEVEL is consulted; if that is empty too
// the logger stays silent. output is a zap output path ("stderr", "stdout"
// or a file path); empty means stderr.
func Initialize(level, output string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	zapLevel, err := ParseLevel(level)
	if err != nil {
		return err
	}

	if output == "" {
		output = "stderr"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	// Colour codes only make sense on a terminal
	if output == "stderr" || output == "stdout" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// ParseLevel maps a level name to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("unknown log level %q (use debug, info, warn or error)", level)
}

// Enabled reports whether logging was switched on for this process.
func Enabled(level string) bool {
	return level != "" || os.Getenv(LogLevelEnvVar) != ""
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogEdit logs one field edit and how the converter handled it.
func LogEdit(l *zap.Logger, radix string, text string, outcome string) {
	l.Debug("Field edited",
		zap.String("radix", radix),
		zap.String("text", text),
		zap.String("outcome", outcome),
	)
}

// LogBitOp logs a grid operation with the value before and after.
func LogBitOp(l *zap.Logger, op string, index int, before, after uint32) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("before", fmt.Sprintf("0x%08X", before)),
		zap.String("after", fmt.Sprintf("0x%08X", after)),
	}
	if op == "toggle" {
		fields = append(fields, zap.Int("index", index))
	}
	l.Debug("Bit operation", fields...)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
