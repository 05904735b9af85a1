package aoc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ForLines calls onLine for each line of r. The y value is the row
// number, starting with 0. If onLine returns an error, ForLines stops and
// returns it as a *ParseError for that line. A failure reading r is
// returned as a *ResourceError.
func ForLines(r io.Reader, onLine func(y int, line string) error) error {
	s := bufio.NewScanner(r)
	y := -1
	for s.Scan() {
		y++
		if err := onLine(y, s.Text()); err != nil {
			return &ParseError{Line: y + 1, Text: s.Text(), Err: err}
		}
	}
	if err := s.Err(); err != nil {
		return &ResourceError{Err: err}
	}
	return nil
}

// Fields splits line on whitespace and returns its first n fields. Any
// further fields are ignored. It returns ErrInvalidLine if the line has
// fewer than n fields.
func Fields(line string, n int) ([]string, error) {
	f := strings.Fields(line)
	if len(f) < n {
		return nil, fmt.Errorf("%w: want %d fields, got %d", ErrInvalidLine, n, len(f))
	}
	return f[:n], nil
}

// Ints parses each of s as a base 10 int64.
func Ints(s ...string) ([]int64, error) {
	out := make([]int64, 0, len(s))
	for _, v := range s {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
