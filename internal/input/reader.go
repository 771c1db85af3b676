package input

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Reader is an interface for reading user input
type Reader interface {
	ReadString(delim byte) (string, error)
}

// StdinReader wraps bufio.Reader for os.Stdin
type StdinReader struct {
	reader *bufio.Reader
}

// NewStdinReader creates a new StdinReader
func NewStdinReader() *StdinReader {
	return &StdinReader{
		reader: bufio.NewReader(os.Stdin),
	}
}

// ReadString reads until delimiter
func (r *StdinReader) ReadString(delim byte) (string, error) {
	return r.reader.ReadString(delim)
}

// Confirm reads a yes/no answer from the reader. Only "y" and "yes"
// (case-insensitive) count as confirmation; EOF and anything else decline.
// Destructive operations like push deletions gate on this.
func Confirm(r Reader) bool {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// StringReader is a simple reader for testing.
// Each input string should already include the delimiter that will be used
// in ReadString calls (e.g., "yes\n" for newline delimiter).
type StringReader struct {
	inputs []string
	index  int
}

// NewStringReader creates a reader from strings.
// Each input string should include the expected delimiter.
func NewStringReader(inputs ...string) *StringReader {
	return &StringReader{inputs: inputs}
}

// ReadString returns the next pre-configured string.
// Returns io.EOF when all inputs have been consumed.
func (r *StringReader) ReadString(delim byte) (string, error) {
	if r.index >= len(r.inputs) {
		return "", io.EOF
	}
	s := r.inputs[r.index]
	r.index++
	return s, nil
}
