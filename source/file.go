package source

import (
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// StdinName is the filename given to source read from standard input
const StdinName = "<stdin>"

// File represents a chunk of source code to be processed by the front-end. The
// "Contents" field is a raw string representation of the file's contents. The
// "Lines" field is a cached slice of the file's contents split by '\n' so that
// error messages aren't required to repeatedly split the contents.
type File struct {
	Filename string
	Contents string
	Lines    []string
}

// NewFile wraps already-read contents in a File and caches its lines
func NewFile(filename, contents string) *File {
	return &File{
		Filename: filename,
		Contents: contents,
		Lines:    strings.SplitAfter(contents, "\n"),
	}
}

// Load reads a source file from disk. The name "-" reads from standard input
func Load(filename string) (*File, error) {
	if filename == "-" {
		return Read(StdinName, os.Stdin)
	}

	buf, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read '%s'", filename)
	}

	return NewFile(filename, string(buf)), nil
}

// Read consumes r completely and returns its contents as a File
func Read(filename string, r io.Reader) (*File, error) {
	buf, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read '%s'", filename)
	}

	return NewFile(filename, string(buf)), nil
}

// Line returns the text of the 1-based line n without its trailing newline.
// Lines outside the file are returned as the empty string
func (f *File) Line(n int) string {
	if n < 1 || n > len(f.Lines) {
		return ""
	}

	return strings.TrimRight(f.Lines[n-1], "\r\n")
}
