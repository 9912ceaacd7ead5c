package util

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

func IsGFA(fpath string) bool {
	return strings.HasSuffix(fpath, ".gfa") || strings.HasSuffix(fpath, ".gfa.gz")
}

// OpenGFA is like GFAOpen, but quits on error.
func OpenGFA(fpath string) io.ReadCloser {
	r, err := GFAOpen(fpath)
	Assert(err, "Could not open GFA file '%s'", fpath)
	return r
}

// GFAOpen opens a GFA file for reading. The special path "-" is standard
// input. Files ending in ".gz" are decompressed on the fly, and closing the
// returned reader closes the underlying file too.
func GFAOpen(fpath string) (io.ReadCloser, error) {
	if fpath == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fp, err := os.Open(fpath)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(fpath, ".gz") {
		return fp, nil
	}

	gr, err := gzip.NewReader(fp)
	if err != nil {
		fp.Close()
		return nil, errors.Wrap(err, "gzip")
	}
	return &gzipFile{gr, fp}, nil
}

type gzipFile struct {
	*gzip.Reader
	fp *os.File
}

func (g *gzipFile) Close() error {
	gerr := g.Reader.Close()
	if err := g.fp.Close(); err != nil {
		return err
	}
	return gerr
}
