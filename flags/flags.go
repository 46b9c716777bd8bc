// Package flags provides support for the demonstration CLI args
package flags

import (
	"errors"
	"flag"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"hop.computer/containers/pkg/combinators"
)

// ErrUnknownDemo indicates that -demo named something other than list, vec or
// all.
var ErrUnknownDemo = errors.New("unknown demo")

// Demo names accepted by -demo.
const (
	DemoList = "list"
	DemoVec  = "vec"
	DemoAll  = "all"
)

// DemoFlags holds CLI arguments for the containers demonstration.
type DemoFlags struct {
	ConfigPath string // TOML scenario, empty for the built-in one
	Demo       string // which demonstration to run
	Verbose    bool   // debug logging
	Trace      bool   // trace logging, includes list lifecycle events
	Plain      bool   // disable terminal styling
	Step       bool   // pause between sections on a terminal
}

// defineDemoFlags calls fs.StringVar and friends for the demo
func defineDemoFlags(fs *flag.FlagSet, f *DemoFlags) {
	fs.StringVar(&f.ConfigPath, "config", "", "path to a TOML scenario file")
	fs.StringVar(&f.Demo, "demo", "", "demonstration to run: list, vec or all")
	fs.BoolVar(&f.Verbose, "v", false, "enable debug logging")
	fs.BoolVar(&f.Trace, "vv", false, "enable trace logging")
	fs.BoolVar(&f.Plain, "plain", false, "disable styled output")
	fs.BoolVar(&f.Step, "step", false, "ask before each section and wait for a key at the end")
}

// ParseDemoArgs defines and parses the flags from the command line for the
// demo. args[0] is the program name.
func ParseDemoArgs(args []string) (*DemoFlags, error) {
	f := &DemoFlags{}
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	defineDemoFlags(fs, f)

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}

	f.Demo = combinators.Or(f.Demo, DemoAll)
	switch f.Demo {
	case DemoList, DemoVec, DemoAll:
	default:
		return nil, pkgerrors.Wrapf(ErrUnknownDemo, "%q", f.Demo)
	}
	return f, nil
}

// LogLevel returns the logrus level selected by -v and -vv.
func (f *DemoFlags) LogLevel() logrus.Level {
	switch {
	case f.Trace:
		return logrus.TraceLevel
	case f.Verbose:
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}

// Runs reports whether the named demonstration is selected.
func (f *DemoFlags) Runs(demo string) bool {
	return f.Demo == DemoAll || f.Demo == demo
}
