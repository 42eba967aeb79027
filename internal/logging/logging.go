// SPDX-License-Identifier: EPL-2.0

// Package logging builds the diagnostics logger of a run. Diagnostics go to
// stderr because stdout may carry feature data.
package logging

import (
	"fmt"
	"io"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"
)

// New returns a logger writing to w at level, tagged with a fresh run id.
func New(w io.Writer, level string) (*logrus.Entry, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		FullTimestamp:    true,
		QuoteEmptyFields: true,
	})

	return l.WithField("run", xid.New().String()), nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
