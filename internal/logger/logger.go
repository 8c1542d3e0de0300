package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fatih/color"
	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/masq"
)

// Logger defines the logging interface used throughout dailylog.
// It separates internal (debug) records from the messages shown to the
// person or job running the tool.
type Logger interface {
	// Private logging methods (debug log only)

	// Info logs an informational message for debugging purposes.
	// Nothing is written unless debug logging is enabled.
	Info(format string, args ...any)

	// Warning logs a warning message. It is shown on stdout only when
	// output is not quiet.
	Warning(format string, args ...any)

	// Error logs an error message. Errors are always shown on stderr.
	Error(format string, args ...any)

	// Debug records a structured message with slog key/value pairs.
	// Values carrying a `masq:"secret"` tag are redacted.
	Debug(msg string, args ...any)

	// User-facing logging methods (debug log + stdout)

	// InfoToUser logs an informational message intended for users.
	// Suppressed in quiet mode.
	InfoToUser(format string, args ...any)

	// WarningToUser logs a warning message intended for users.
	WarningToUser(format string, args ...any)

	// Success logs a success message to the user.
	Success(format string, args ...any)

	// StatusMessage prints a plain status line. Suppressed in quiet mode.
	StatusMessage(format string, args ...any)

	// Close flushes and closes the debug log file, if any.
	Close() error
}

// Options configures a DefaultLogger.
type Options struct {
	// Debug enables the structured debug log.
	Debug bool

	// LogFile is where debug records go. Empty means stderr.
	LogFile string

	// Quiet hides informational messages.
	Quiet bool

	// RunID is attached to every structured record.
	RunID string

	Stdout io.Writer
	Stderr io.Writer
}

// DefaultLogger provides structured logging capability and implements the Logger interface
type DefaultLogger struct {
	mu      sync.Mutex
	logger  *slog.Logger
	enabled bool
	quiet   bool
	stdout  io.Writer
	stderr  io.Writer
	file    *os.File

	successColor *color.Color
	warnColor    *color.Color
	errorColor   *color.Color
	infoColor    *color.Color
}

// New creates a new Logger writing to the process stdout and stderr
func New(opts Options) *DefaultLogger {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	return NewWithOutput(opts)
}

// NewWithOutput creates a DefaultLogger with the writers given in opts
func NewWithOutput(opts Options) *DefaultLogger {
	redact := masq.New(masq.WithTag("secret"))

	var handler slog.Handler
	var file *os.File

	if opts.Debug && opts.LogFile != "" {
		logDir := filepath.Dir(opts.LogFile)
		if logDir != "." {
			if err := os.MkdirAll(logDir, 0o755); err != nil {
				_, _ = fmt.Fprintf(opts.Stderr, "⚠️ Failed to create log directory: %v\n", err)
			}
		}

		f, err := os.OpenFile(opts.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err == nil {
			file = f
			handler = slog.NewTextHandler(f, &slog.HandlerOptions{
				Level:       slog.LevelDebug,
				ReplaceAttr: redact,
			})
		} else {
			_, _ = fmt.Fprintf(opts.Stderr, "⚠️ Failed to open log file: %v, using stderr instead\n", err)
		}
	}

	if handler == nil {
		handler = clog.New(
			clog.WithWriter(opts.Stderr),
			clog.WithLevel(slog.LevelDebug),
			clog.WithColor(!color.NoColor),
			clog.WithReplaceAttr(redact),
		)
	}

	logger := slog.New(handler)
	if opts.RunID != "" {
		logger = logger.With("run_id", opts.RunID)
	}

	l := &DefaultLogger{
		logger:       logger,
		enabled:      opts.Debug,
		quiet:        opts.Quiet,
		stdout:       opts.Stdout,
		stderr:       opts.Stderr,
		file:         file,
		successColor: color.New(color.FgGreen),
		warnColor:    color.New(color.FgYellow),
		errorColor:   color.New(color.FgRed),
		infoColor:    color.New(color.FgCyan),
	}

	if opts.Debug {
		logger.Debug("dailylog debug logging started", "log_file", opts.LogFile)
	}

	return l
}

// Info logs an informational message (debug log only)
func (l *DefaultLogger) Info(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled {
		return
	}

	l.logger.Info(fmt.Sprintf(format, args...))
}

// Debug records a structured message (debug log only)
func (l *DefaultLogger) Debug(msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled {
		return
	}

	l.logger.Debug(msg, args...)
}

// InfoToUser logs an informational message to both the debug log and stdout
func (l *DefaultLogger) InfoToUser(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.enabled {
		l.logger.Info(msg)
	}

	if l.quiet {
		return
	}
	_, _ = l.infoColor.Fprintf(l.stdout, "ℹ️  %s\n", msg)
}

// Success logs a success message to both the debug log and stdout
func (l *DefaultLogger) Success(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.enabled {
		l.logger.Info(msg)
	}

	_, _ = l.successColor.Fprintf(l.stdout, "✅ %s\n", msg)
}

// Warning logs a warning message
func (l *DefaultLogger) Warning(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.enabled {
		l.logger.Warn(msg)
	}

	if !l.quiet {
		_, _ = l.warnColor.Fprintf(l.stdout, "⚠️  %s\n", msg)
	}
}

// WarningToUser logs a warning message to both the debug log and stdout
func (l *DefaultLogger) WarningToUser(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.enabled {
		l.logger.Warn(msg)
	}

	_, _ = l.warnColor.Fprintf(l.stdout, "⚠️  %s\n", msg)
}

// Error logs an error message
func (l *DefaultLogger) Error(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.enabled {
		l.logger.Error(msg)
	}

	// Always show errors regardless of debug status
	_, _ = l.errorColor.Fprintf(l.stderr, "❌ %s\n", msg)
}

// StatusMessage prints a status message to stdout only (no logging)
func (l *DefaultLogger) StatusMessage(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.quiet {
		return
	}
	_, _ = fmt.Fprintln(l.stdout, fmt.Sprintf(format, args...))
}

// Close ensures any buffered data is written and closes the debug log file
func (l *DefaultLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	if err := l.file.Sync(); err != nil {
		return err
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// SetStdout sets a custom writer for user-facing stdout messages only.
// NOTE: This does not affect where structured records are directed.
func (l *DefaultLogger) SetStdout(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stdout = w
}

// SetStderr sets a custom writer for user-facing stderr messages only.
// NOTE: This does not affect where structured records are directed.
func (l *DefaultLogger) SetStderr(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stderr = w
}
