package logger

import (
	"io"

	clog "github.com/charmbracelet/log"
)

// New returns a logger writing to w (stderr in the CLI). Stdout carries the
// listing, so nothing logged here may go there.
func New(w io.Writer, verbose bool) *clog.Logger {
	l := clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: true,
		Prefix:          "distlist",
	})
	if verbose {
		l.SetLevel(clog.DebugLevel)
	}
	return l
}
