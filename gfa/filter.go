package gfa

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Stats counts what a Filter has done so far.
type Stats struct {
	Lines      int // every line seen, links or not
	Links      int
	Kept       int // links written
	Duplicates int // links dropped because their key was already seen
	SelfLoops  int
}

// Filter removes duplicate and self-loop links from a stream of GFA lines.
// The set of seen edge keys only ever grows, so a Filter should be used for
// exactly one input. The zero value is not usable; call NewFilter.
type Filter struct {
	seen  map[EdgeKey]struct{}
	stats Stats
}

func NewFilter() *Filter {
	return &Filter{seen: make(map[EdgeKey]struct{})}
}

// Line processes a single input line. It returns the line to emit (with
// trailing whitespace stripped) and whether it should be emitted at all.
//
// Non-link lines are always kept. A link is kept only if it is not a
// self-loop and its key has not been seen before. The key is recorded in
// either case.
func (f *Filter) Line(line string) (string, bool, error) {
	f.stats.Lines++
	if !IsLink(line) {
		return Strip(line), true, nil
	}

	link, err := ParseLink(line)
	if err != nil {
		return "", false, err
	}
	f.stats.Links++

	key := link.Key()
	_, dup := f.seen[key]
	f.seen[key] = struct{}{}

	switch {
	case link.IsSelfLoop():
		f.stats.SelfLoops++
		return "", false, nil
	case dup:
		f.stats.Duplicates++
		return "", false, nil
	}
	f.stats.Kept++
	return link.Raw, true, nil
}

// Seen reports whether a link with key k has been processed.
func (f *Filter) Seen(k EdgeKey) bool {
	_, ok := f.seen[k]
	return ok
}

// Len returns the number of distinct edge keys seen.
func (f *Filter) Len() int {
	return len(f.seen)
}

func (f *Filter) Stats() Stats {
	return f.stats
}

// Run reads lines from r until EOF and writes every kept line to w followed
// by a newline. Processing stops at the first malformed link; everything
// emitted before it has been written to w when Run returns.
func (f *Filter) Run(r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)
	for {
		line, rerr := br.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			bw.Flush()
			return errors.Wrap(rerr, "reading GFA input")
		}
		// A file ending in a newline yields an empty final read; it is not a line.
		if len(line) == 0 && rerr == io.EOF {
			break
		}

		out, keep, err := f.Line(line)
		if err != nil {
			if ferr := bw.Flush(); ferr != nil {
				return errors.Wrap(ferr, "writing GFA output")
			}
			return err
		}
		if keep {
			if _, err := bw.WriteString(out); err != nil {
				return errors.Wrap(err, "writing GFA output")
			}
			if err := bw.WriteByte('\n'); err != nil {
				return errors.Wrap(err, "writing GFA output")
			}
		}
		if rerr == io.EOF {
			break
		}
	}
	return errors.Wrap(bw.Flush(), "writing GFA output")
}
