package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

var (
	defaultLogger *Logger
)

// Logger wraps one stdlib logger per level so levels can be silenced
// independently.
type Logger struct {
	debugLogger *log.Logger
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// LogLevel selects the minimum level that reaches the output.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

/**
 * Convert level string to LogLevel
 * @param {string} level - Level name (debug/info/warn/error)
 * @returns {LogLevel} Parsed level, WARN when unrecognized
 */
func GetLogLevelFromString(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn":
		return WARN
	case "error":
		return ERROR
	default:
		return WARN
	}
}

/**
 * Initialize the logging system
 * @param {string} path - Log file path, "console" or empty for stdout
 * @param {string} level - Minimum level name
 * @param {bool} serverMode - Server mode mirrors file output to stdout
 * @description
 * - Creates the log directory when a file path is given
 * - Falls back to stdout when the log file cannot be opened
 */
func InitLogger(path, level string, serverMode bool) {
	var output io.Writer
	if path == "console" || path == "" {
		output = os.Stdout
	} else {
		output = setupLogFileOutput(path)
		if serverMode {
			output = io.MultiWriter(os.Stdout, output)
		}
	}

	logLevel := GetLogLevelFromString(level)
	flags := log.LstdFlags | log.Lshortfile

	defaultLogger = &Logger{
		debugLogger: log.New(io.Discard, "DEBUG: ", flags),
		infoLogger:  log.New(io.Discard, "INFO: ", flags),
		warnLogger:  log.New(io.Discard, "WARN: ", flags),
		errorLogger: log.New(io.Discard, "ERROR: ", flags),
	}

	if logLevel <= DEBUG {
		defaultLogger.debugLogger.SetOutput(output)
	}
	if logLevel <= INFO {
		defaultLogger.infoLogger.SetOutput(output)
	}
	if logLevel <= WARN {
		defaultLogger.warnLogger.SetOutput(output)
	}
	if logLevel <= ERROR {
		defaultLogger.errorLogger.SetOutput(output)
	}
}

// setupLogFileOutput opens the log file, creating its directory first.
func setupLogFileOutput(logPath string) io.Writer {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log directory: %v\n", err)
		return os.Stdout
	}

	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		return os.Stdout
	}
	return file
}

// Debug logs at debug level.
func Debug(v ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.debugLogger.Println(v...)
	}
}

// Debugf logs a formatted message at debug level.
func Debugf(format string, v ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.debugLogger.Printf(format, v...)
	}
}

// Info logs at info level.
func Info(v ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.infoLogger.Println(v...)
	}
}

// Infof logs a formatted message at info level.
func Infof(format string, v ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.infoLogger.Printf(format, v...)
	}
}

// Warn logs at warn level.
func Warn(v ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.warnLogger.Println(v...)
	}
}

// Warnf logs a formatted message at warn level.
func Warnf(format string, v ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.warnLogger.Printf(format, v...)
	}
}

// Error logs at error level.
func Error(v ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.errorLogger.Println(v...)
	}
}

// Errorf logs a formatted message at error level.
func Errorf(format string, v ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.errorLogger.Printf(format, v...)
	}
}

// fatalFallback builds the message written when the logger was never
// initialized.
func fatalFallback(v ...interface{}) string {
	return "FATAL: " + fmt.Sprintln(v...)
}

// Fatal logs at error level and exits.
func Fatal(v ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.errorLogger.Fatal(v...)
	} else {
		fmt.Fprint(os.Stderr, fatalFallback(v...))
		os.Exit(1)
	}
}

// Fatalf logs a formatted message at error level and exits.
func Fatalf(format string, v ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.errorLogger.Fatalf(format, v...)
	} else {
		fmt.Fprintf(os.Stderr, "FATAL: "+format+"\n", v...)
		os.Exit(1)
	}
}
