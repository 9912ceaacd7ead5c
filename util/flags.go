package util

import (
	"flag"
	"fmt"
	"os"
	"path"
)

var (
	FlagQuiet   = false
	FlagVerbose = false
)

func init() {
	flag.BoolVar(&FlagQuiet, "quiet", FlagQuiet,
		"When set, warnings will not be written to stderr.")
	flag.BoolVar(&FlagVerbose, "verbose", FlagVerbose,
		"When set, progress and summary information will be written\n"+
			"to stderr.")
}

// FlagParse sets the usage message of the command and parses the command line.
// `positional` names the arguments expected after the flags, and
// `description` is a free-form explanation shown below it.
func FlagParse(positional, description string) {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "\nUsage: %s [flags] %s\n",
			path.Base(os.Args[0]), positional)
		if len(description) > 0 {
			fmt.Fprintf(os.Stderr, "\n%s\n", description)
		}
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()
	setLogLevel(FlagQuiet, FlagVerbose)
}

// AssertNArg quits with the usage message unless exactly n positional
// arguments were given.
func AssertNArg(n int) {
	if flag.NArg() != n {
		flag.Usage()
		os.Exit(1)
	}
}

func Arg(i int) string {
	return flag.Arg(i)
}
