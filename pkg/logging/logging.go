// Package logging wraps charmbracelet/log with the verbosity model used by
// the tmate CLI: a repeatable -v flag raises the level one step at a time.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

func init() {
	styles := log.DefaultStyles()
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Foreground(lipgloss.Color("#7F6DFF"))
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Foreground(lipgloss.Color("#FFE763"))
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Foreground(lipgloss.Color("#FF4473"))
	logger.SetStyles(styles)
	logger.SetLevel(log.WarnLevel)
}

// SetVerbosity maps the -v count onto a log level. Zero shows warnings and
// errors only, one adds info, two or more adds debug.
func SetVerbosity(n int) {
	switch {
	case n <= 0:
		logger.SetLevel(log.WarnLevel)
	case n == 1:
		logger.SetLevel(log.InfoLevel)
	default:
		logger.SetLevel(log.DebugLevel)
	}
}

// SetOutput redirects log output. Tests use this to capture messages.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func Debug(format string, v ...any) {
	logger.Debug(fmt.Sprintf(format, v...))
}

func Info(format string, v ...any) {
	logger.Info(fmt.Sprintf(format, v...))
}

func Warn(format string, v ...any) {
	logger.Warn(fmt.Sprintf(format, v...))
}

func Error(format string, v ...any) {
	logger.Error(fmt.Sprintf(format, v...))
}
