package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds the command logger. With --log-file set, records are
// appended to that file. Interactive commands otherwise hold records in
// memory and flush them to stderr once the alternate screen is gone.
// The returned func must be called before the command returns.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	done := func() {}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		done = func() { _ = f.Close() }
	case interactive:
		buf := &bytes.Buffer{}
		w = buf
		done = func() { _, _ = os.Stderr.Write(buf.Bytes()) }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyhop",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, done, nil
}
