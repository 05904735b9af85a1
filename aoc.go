// Package aoc is a small harness for Advent of Code solutions. Each day
// implements [Solution], is wrapped into a [RunFunc] with [Wrap] and is
// dispatched by number through a [Registry].
package aoc

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"tailscale.com/util/deephash"
)

// Solution is implemented by every day. I is the parsed form of the
// puzzle input and O is the answer type, printed with fmt.
type Solution[I, O any] interface {
	// Parse reads the whole puzzle input. It returns a *ParseError when a
	// line doesn't have the expected shape.
	Parse(r io.Reader) (I, error)
	// Part1 returns the answer to the first part, or false if the day
	// doesn't implement it.
	Part1(in I) (O, bool)
	// Part2 is like Part1 for the second part.
	Part2(in I) (O, bool)
}

// RunFunc runs one day against the input in r, writing results to w.
type RunFunc func(w io.Writer, r io.Reader, timing bool) error

// Wrap returns a RunFunc that runs s. The returned func holds no state
// between calls.
func Wrap[I, O any](s Solution[I, O]) RunFunc {
	hash := deephash.HasherForType[I]()
	return func(w io.Writer, r io.Reader, timing bool) error {
		return run(w, s, r, timing, hash)
	}
}

// Run parses r with s and prints the answer to each implemented part.
// If timing is set, the duration of parsing and of each part is printed
// right after that step.
func Run[I, O any](w io.Writer, s Solution[I, O], r io.Reader, timing bool) error {
	return Wrap(s)(w, r, timing)
}

func run[I, O any](w io.Writer, s Solution[I, O], r io.Reader, timing bool, hash func(*I) deephash.Sum) error {
	t0 := time.Now()
	in, err := s.Parse(r)
	if err != nil {
		return err
	}
	took := time.Since(t0)
	if e := log.Debug(); e.Enabled() {
		e.Str("fingerprint", fmt.Sprint(hash(&in))).Dur("took", took).Msg("parsed input")
	}
	if timing {
		if _, err := fmt.Fprintf(w, "  Parse time: %v\n", round(took)); err != nil {
			return err
		}
	}

	parts := []struct {
		name string
		fn   func(I) (O, bool)
	}{
		{"1", s.Part1},
		{"2", s.Part2},
	}
	for _, p := range parts {
		t0 := time.Now()
		got, ok := p.fn(in)
		took := time.Since(t0)
		if !ok {
			log.Trace().Str("part", p.name).Msg("part not implemented")
			continue
		}
		if _, err := fmt.Fprintf(w, "  Part %s: %v\n", p.name, got); err != nil {
			return err
		}
		if timing {
			if _, err := fmt.Fprintf(w, "    Time: %v\n", round(took)); err != nil {
				return err
			}
		}
	}
	return nil
}

func round(d time.Duration) time.Duration {
	if d < time.Microsecond {
		return d
	}
	return d.Round(time.Microsecond)
}
