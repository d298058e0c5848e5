// Package runlog implements the append-only stage transcript written during a
// pipeline run. Every record is a header line followed by the stage's raw
// output and a blank separator line. Writes are best-effort: a logging failure
// must never break generation, so errors are swallowed.
package runlog

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Log appends stage records to a single UTF-8 text file.
// A nil *Log or an empty path disables logging.
type Log struct {
	path string
}

// New returns a log writing to path. An empty path yields a disabled log.
func New(path string) *Log {
	if path == "" {
		return nil
	}
	return &Log{path: path}
}

// Path returns the log file path, or "" when disabled.
func (l *Log) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Append writes one stage record: "--- [<timestamp>] stage=<name> <extra>"
// followed by the content and a blank line. Safe on a nil receiver.
func (l *Log) Append(stage, content, extra string) {
	if l == nil || l.path == "" {
		return
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()

	header := fmt.Sprintf("--- [%s] stage=%s", time.Now().Format("2006-01-02 15:04:05"), stage)
	if extra != "" {
		header += " " + extra
	}
	_, _ = fmt.Fprintf(f, "%s\n%s\n\n", header, strings.TrimRight(content, " \t\n"))
	_ = f.Sync()
}
