package log

import (
	stdlog "log"
	"os"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	debugEnabled bool
	logFile      *os.File
)

// Setup enables debug logging to $XDG_STATE_HOME/tm/debug.log. The
// TM_DEBUG=1 environment variable enables it as well.
func Setup(debug bool) error {
	debugEnabled = debug || os.Getenv("TM_DEBUG") == "1"
	if !debugEnabled || logFile != nil {
		return nil
	}
	logPath, err := xdg.StateFile("tm/debug.log")
	if err != nil {
		return err
	}
	logFile, err = tea.LogToFile(logPath, "tm")
	return err
}

// Close closes the debug log file, if one is open.
func Close() error {
	if logFile == nil {
		return nil
	}
	defer func() { logFile = nil }()
	return logFile.Close()
}

// Printf logs a debug line when debug logging is enabled.
func Printf(format string, args ...any) {
	if debugEnabled {
		stdlog.Printf("DEBUG: "+format, args...)
	}
}
