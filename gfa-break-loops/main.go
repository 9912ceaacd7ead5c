// Command gfa-break-loops removes loop artifacts from the links of a GFA
// assembly graph.
//
// Every non-link record is written to stdout unchanged (minus trailing
// whitespace). Of the `L` records, self-loops are dropped, and so is every
// link between two segments that already have a link between them, no matter
// the orientation of either end. For example, of
//
//	L x + y - 10M
//	L x + y + 10M
//
// only the first line is kept.
//
// A link record with fewer than four fields stops the run. The offending line
// and a stack trace are written to stdout after everything emitted so far, and
// the exit status is 1.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/yatsukha/cpp-mdbg/gfa"
	"github.com/yatsukha/cpp-mdbg/util"
)

func init() {
	util.FlagParse("gfa-file",
		"Break loops in a GFA graph by removing self-loop links and\n"+
			"duplicate links between the same pair of segments.\n"+
			"The file may be gzipped, or '-' to read stdin.")
	util.AssertNArg(1)
}

func main() {
	fpath := util.Arg(0)
	if fpath != "-" && !util.IsGFA(fpath) {
		util.Warnf("'%s' does not look like a GFA file.", fpath)
	}

	in := util.OpenGFA(fpath)
	defer in.Close()

	f := gfa.NewFilter()
	if !report(f.Run(in, os.Stdout), os.Stdout) {
		in.Close()
		os.Exit(1)
	}

	s := f.Stats()
	util.Verbosef("%d lines, %d links: %d kept, %d duplicates, %d self-loops "+
		"(%d distinct segment pairs)",
		s.Lines, s.Links, s.Kept, s.Duplicates, s.SelfLoops, f.Len())
}

// report writes the diagnostic for a malformed link to w and returns false.
// Other errors are fatal. A nil error returns true.
func report(err error, w io.Writer) bool {
	if err == nil {
		return true
	}
	merr, ok := gfa.AsMalformed(err)
	if !ok {
		util.Assert(err)
	}
	fmt.Fprintf(w, "at line: %s\n", merr.Line)
	fmt.Fprintf(w, "%+v\n", err)
	return false
}
