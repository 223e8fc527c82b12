package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/tourplan/config"
)

const (
	ExitSuccess           = 0
	ExitFailure           = 1
	ExitInvalidInvocation = 2
)

// randomMaxDistance bounds --random distances.
const randomMaxDistance = 500

// Invocation is the parsed command line plus the merged configuration.
type Invocation struct {
	Input     string // JSON distance document
	Matrix    string // stored matrix name
	Random    int    // synthetic location count
	Seed      int64
	Symmetric bool

	Start   string // overrides the document start; normalized before use
	Save    string // store the input matrix under this name
	Export  string // write the input matrix as a JSON document
	History int    // list this many recent runs instead of solving

	Config config.Config
}

// InvocationError carries the exit code for a bad command line or input.
type InvocationError struct {
	ExitCode int
	Message  string
	Err      error // underlying cause, if any
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func (e *InvocationError) Unwrap() error { return e.Err }

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

// ErrHelp is returned when -h/--help was requested; usage has been printed.
var ErrHelp = pflag.ErrHelp

// ParseInvocation parses args (without the program name). Usage text for
// --help goes to out.
func ParseInvocation(args []string, out io.Writer) (*Invocation, error) {
	fs := pflag.NewFlagSet("tourplan", pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.SortFlags = false

	var (
		inv        Invocation
		configPath string
	)
	fs.StringVarP(&inv.Input, "input", "i", "", "JSON distance document")
	fs.StringVar(&inv.Matrix, "matrix", "", "name of a matrix stored in --db")
	fs.IntVar(&inv.Random, "random", 0, "plan over N synthetic locations")
	fs.Int64Var(&inv.Seed, "seed", 0, "seed for --random (0 = default)")
	fs.BoolVar(&inv.Symmetric, "symmetric", false, "make --random distances symmetric")
	fs.StringVarP(&inv.Start, "start", "s", "", "start location (default: document start or first location)")
	fs.StringVar(&inv.Save, "save", "", "store the input matrix in --db under this name")
	fs.StringVar(&inv.Export, "export", "", "write the input matrix to this JSON file")
	fs.IntVar(&inv.History, "history", 0, "list the N most recent runs from --db and exit")
	fs.StringVarP(&configPath, "config", "c", "", "config file (yaml, json or toml)")
	config.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, ErrHelp
		}
		return nil, invalidInvocationf("%v", err)
	}
	if fs.NArg() > 0 {
		return nil, invalidInvocationf("unexpected arguments: %v", fs.Args())
	}

	cfg, err := config.Load(configPath, fs)
	if err != nil {
		return nil, invalidInvocationf("%v", err)
	}
	inv.Config = cfg

	if err = inv.validate(); err != nil {
		return nil, err
	}

	return &inv, nil
}

func (inv *Invocation) validate() error {
	sources := 0
	if inv.Input != "" {
		sources++
	}
	if inv.Matrix != "" {
		sources++
	}
	if inv.Random != 0 {
		sources++
	}

	if inv.History < 0 {
		return invalidInvocationf("--history must be positive, got %d", inv.History)
	}
	if inv.History > 0 {
		if inv.Config.Store.Path == "" {
			return invalidInvocationf("--history needs --db")
		}
		return nil
	}

	switch {
	case sources == 0:
		return invalidInvocationf("one of --input, --matrix or --random is required")
	case sources > 1:
		return invalidInvocationf("--input, --matrix and --random are mutually exclusive")
	case inv.Random < 0 || inv.Random == 1:
		return invalidInvocationf("--random needs at least 2 locations, got %d", inv.Random)
	}
	if (inv.Matrix != "" || inv.Save != "") && inv.Config.Store.Path == "" {
		return invalidInvocationf("--matrix and --save need --db")
	}

	return nil
}
