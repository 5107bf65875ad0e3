package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stellrent/response/logging/logger/config"
)

// VersionKey is the field the build version is logged under.
const VersionKey = "version"

// Logger wraps logrus with context-aware logging methods.
type Logger struct {
	*logrus.Logger
	version string
	logFile *os.File
}

var (
	standardLogger *Logger
	once           sync.Once
)

func newLogger() *Logger {
	l := &Logger{Logger: logrus.New()}
	l.SetFormatter(&logrus.JSONFormatter{})
	return l
}

// StdLogger returns the singleton logger instance
func StdLogger() *Logger {
	once.Do(func() {
		standardLogger = newLogger()
	})
	return standardLogger
}

// New initializes the standard logger with the given configuration and
// returns its cleanup function.
func New(c *config.Config) (func(), error) {
	return StdLogger().Init(c)
}

// SetVersion sets the version for logging
func (l *Logger) SetVersion(v string) {
	l.version = v
}

// Init initializes the logger with the given configuration
func (l *Logger) Init(c *config.Config) (func(), error) {
	if c == nil {
		return func() {}, nil
	}

	l.SetLevel(logrus.Level(c.Level))

	switch c.Format {
	case "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		l.SetFormatter(&logrus.JSONFormatter{})
	}

	switch c.Output {
	case "stderr":
		l.SetOutput(os.Stderr)
	case "file":
		if c.OutputFile == "" {
			return nil, fmt.Errorf("logger output is file but output_file is empty")
		}
		if err := l.openLogFile(c.OutputFile); err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
	default:
		l.SetOutput(os.Stdout)
	}

	if c.Desensitization != nil && c.Desensitization.Enabled {
		l.AddHook(NewDesensitizeHook(NewDesensitizer(c.Desensitization)))
	}

	return func() {
		if l.logFile != nil {
			_ = l.logFile.Close()
			l.logFile = nil
		}
	}, nil
}

func (l *Logger) openLogFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	name := fmt.Sprintf("%s.%s.log", strings.TrimSuffix(path, ".log"), time.Now().Format("2006-01-02"))
	f, err := os.OpenFile(name, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	if l.logFile != nil {
		_ = l.logFile.Close()
	}
	l.logFile = f
	l.SetOutput(f)
	return nil
}

// Entry returns a log entry carrying the trace id and version from ctx.
func (l *Logger) Entry(ctx context.Context) *logrus.Entry {
	fields := logrus.Fields{}

	if traceID := getTraceID(ctx); traceID != "" {
		fields[traceKey] = traceID
	}
	if l.version != "" {
		fields[VersionKey] = l.version
	}

	return l.WithFields(fields)
}

func (l *Logger) log(ctx context.Context, level logrus.Level, args ...any) {
	l.Entry(ctx).Log(level, args...)
}

func (l *Logger) logf(ctx context.Context, level logrus.Level, format string, args ...any) {
	l.Entry(ctx).Logf(level, format, args...)
}

func (l *Logger) Debug(ctx context.Context, args ...any) { l.log(ctx, logrus.DebugLevel, args...) }
func (l *Logger) Info(ctx context.Context, args ...any)  { l.log(ctx, logrus.InfoLevel, args...) }
func (l *Logger) Warn(ctx context.Context, args ...any)  { l.log(ctx, logrus.WarnLevel, args...) }
func (l *Logger) Error(ctx context.Context, args ...any) { l.log(ctx, logrus.ErrorLevel, args...) }

func (l *Logger) Debugf(ctx context.Context, format string, args ...any) {
	l.logf(ctx, logrus.DebugLevel, format, args...)
}
func (l *Logger) Infof(ctx context.Context, format string, args ...any) {
	l.logf(ctx, logrus.InfoLevel, format, args...)
}
func (l *Logger) Warnf(ctx context.Context, format string, args ...any) {
	l.logf(ctx, logrus.WarnLevel, format, args...)
}
func (l *Logger) Errorf(ctx context.Context, format string, args ...any) {
	l.logf(ctx, logrus.ErrorLevel, format, args...)
}

// Exported functions operating on the standard logger

func SetVersion(v string)                            { StdLogger().SetVersion(v) }
func SetOutput(out io.Writer)                        { StdLogger().SetOutput(out) }
func SetLevel(level logrus.Level)                    { StdLogger().SetLevel(level) }
func AddHook(hook logrus.Hook)                       { StdLogger().AddHook(hook) }
func Entry(ctx context.Context) *logrus.Entry        { return StdLogger().Entry(ctx) }
func Debug(ctx context.Context, args ...any)         { StdLogger().Debug(ctx, args...) }
func Info(ctx context.Context, args ...any)          { StdLogger().Info(ctx, args...) }
func Warn(ctx context.Context, args ...any)          { StdLogger().Warn(ctx, args...) }
func Error(ctx context.Context, args ...any)         { StdLogger().Error(ctx, args...) }
func Debugf(ctx context.Context, f string, a ...any) { StdLogger().Debugf(ctx, f, a...) }
func Infof(ctx context.Context, f string, a ...any)  { StdLogger().Infof(ctx, f, a...) }
func Warnf(ctx context.Context, f string, a ...any)  { StdLogger().Warnf(ctx, f, a...) }
func Errorf(ctx context.Context, f string, a ...any) { StdLogger().Errorf(ctx, f, a...) }
