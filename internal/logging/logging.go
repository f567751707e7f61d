// Package logging standardizes the logrus fields used across mediacore.
//
// Every log line carries "package" and "function" fields. Entries are
// plain *logrus.Entry values, so they can be extended with WithField or
// WithError and shared between goroutines.
package logging

import (
	"fmt"
	"io"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
)

// New returns an entry tagged with pkg and function.
func New(pkg, function string) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"function": function,
		"package":  pkg,
	})
}

// WithCaller adds the file:line and function name of its caller to e.
func WithCaller(e *logrus.Entry) *logrus.Entry {
	pc, file, line, ok := runtime.Caller(1)
	if !ok {
		return e
	}
	fields := logrus.Fields{"caller": fmt.Sprintf("%s:%d", file, line)}
	if fn := runtime.FuncForPC(pc); fn != nil {
		fields["caller_func"] = path.Base(fn.Name())
	}
	return e.WithFields(fields)
}

// BytePreview returns fields describing data by size and its first 8 bytes.
func BytePreview(data []byte, name string) logrus.Fields {
	preview := "nil"
	if len(data) > 0 {
		previewLen := min(8, len(data))
		preview = fmt.Sprintf("%x", data[:previewLen])
		if len(data) > previewLen {
			preview += "..."
		}
	}

	return logrus.Fields{
		name + "_preview": preview,
		name + "_size":    len(data),
	}
}

// Configure sets the global logrus level, format and output.
func Configure(level string, json bool, out io.Writer) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	logrus.SetLevel(lvl)
	if json {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	if out != nil {
		logrus.SetOutput(out)
	}
	return nil
}
