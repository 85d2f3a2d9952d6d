// Package logging builds the structured logger every ambient component in
// this module takes as a dependency: a github.com/go-kit/kit/log.Logger in
// place of a bare *log.Logger field, grounded on the caspaxos
// protocol-operations example, which threads a go-kit log.Logger through
// as a plain parameter rather than a package global.
package logging

import (
	"os"
	"strings"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// New builds a logfmt logger writing to stderr, tagged with a timestamp and
// caller on every line, filtered to levelName ("debug", "info", "warn",
// "error"; unrecognized names fall back to "info").
func New(levelName string) log.Logger {
	base := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	base = log.With(base, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	var opt level.Option
	switch strings.ToLower(levelName) {
	case "debug":
		opt = level.AllowDebug()
	case "warn", "warning":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		opt = level.AllowInfo()
	}
	return level.NewFilter(base, opt)
}
