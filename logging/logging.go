// Package logging holds the process-wide logger. Game output goes to the
// console; the logger reports content problems and turn diagnostics.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It is usable before Init with logrus defaults
// writing to stderr.
var Log = logrus.New()

// Init configures the global logger. Unknown levels fall back to warn;
// format "json" selects the JSON formatter, anything else plain text.
func Init(level, format string, out io.Writer) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	Log.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if out == nil {
		out = os.Stderr
	}
	Log.SetOutput(out)
}
