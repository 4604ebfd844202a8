package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/hexaflex/c8vm/vm"
)

// Config defines program configuration.
type Config struct {
	Program        string // Path to the ROM file to load.
	CyclesPerFrame int    // Instructions executed per 60 Hz frame.
	Frames         int    // Number of frames to run; 0 runs until an error occurs.
	Realtime       bool   // Pace frames at 60 Hz instead of running flat out.
	Seed           int64  // Random seed; 0 picks one from the clock.
	Keys           []int  // Keys held down for the whole run.
	PrintTrace     bool   // Print instruction trace data?
	Version        bool   // Print version information and exit.
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	flags.Usage = func() {
		fmt.Printf("%s [options] <rom file>\n", os.Args[0])
		flags.PrintDefaults()
	}

	c, err := newConfig(flags, os.Args[1:])
	if c != nil && c.Version {
		fmt.Println(Version())
		os.Exit(0)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flags.Usage()
		os.Exit(1)
	}

	return c
}

// newConfig parses the given arguments into a configuration.
// All invalid values are reported together.
func newConfig(flags *flag.FlagSet, args []string) (*Config, error) {
	var c Config
	c.CyclesPerFrame = 10
	c.Frames = 600

	var keys string

	flags.IntVar(&c.CyclesPerFrame, "cycles-per-frame", c.CyclesPerFrame, "Instructions executed per frame.")
	flags.IntVar(&c.Frames, "frames", c.Frames, "Number of frames to run; 0 runs until the program fails.")
	flags.BoolVar(&c.Realtime, "realtime", c.Realtime, "Pace frames at 60 Hz.")
	flags.Int64Var(&c.Seed, "seed", c.Seed, "Random number seed; 0 uses the current time.")
	flags.StringVar(&keys, "keys", keys, "Comma separated list of hex keys held down, e.g. \"1,a\".")
	flags.BoolVar(&c.PrintTrace, "trace", c.PrintTrace, "Print instruction trace data.")
	flags.BoolVar(&c.Version, "version", c.Version, "Display version information.")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if c.Version {
		return &c, nil
	}

	var errorset ErrorSet

	if c.CyclesPerFrame < 1 {
		errorset.Append(errors.Errorf("invalid cycles per frame %d", c.CyclesPerFrame))
	}

	if c.Frames < 0 {
		errorset.Append(errors.Errorf("invalid frame count %d", c.Frames))
	}

	var err error
	if c.Keys, err = parseKeys(keys); err != nil {
		errorset.Append(err)
	}

	if flags.NArg() == 0 {
		errorset.Append(errors.New("missing rom file"))
	} else {
		c.Program = flags.Arg(0)
	}

	if errorset.Len() > 0 {
		return nil, errorset
	}

	return &c, nil
}

// parseKeys parses a comma separated list of hex key values.
func parseKeys(s string) ([]int, error) {
	if len(s) == 0 {
		return nil, nil
	}

	var keys []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)

		n, err := strconv.ParseUint(field, 16, 8)
		if err != nil || n >= vm.KeyCount {
			return nil, errors.Errorf("invalid key %q", field)
		}

		keys = append(keys, int(n))
	}

	return keys, nil
}
