// Package logging sets up the diagnostic log. One file per day under the
// home directory's log dir; user-facing output stays on stdout.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a logger appending to today's log file under logDir. If the
// directory cannot be created the logger silently discards output; a broken
// log destination must not block timer commands.
func New(logDir string) *log.Logger {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return log.New(io.Discard)
	}

	name := time.Now().Format("2006-01-02") + ".log"
	f, err := os.OpenFile(filepath.Join(logDir, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(io.Discard)
	}

	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
	})
}
