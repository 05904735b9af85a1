// Package aoctest checks solutions against the samples from the puzzle
// descriptions.
package aoctest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"tailscale.com/util/deephash"

	"github.com/iainlane/aoc24"
)

// Sample is a sample input with the expected answers. An empty want
// means the part isn't checked.
type Sample struct {
	Input string
	Part1 string
	Part2 string
}

// Check parses the sample with s, checks that parsing is repeatable and
// compares each part's answer to the sample's.
func Check[I, O any](t *testing.T, s aoc.Solution[I, O], sample Sample) {
	t.Helper()

	in := parse(t, s, sample.Input)
	again := parse(t, s, sample.Input)
	require.Equal(t, deephash.Hash(&in), deephash.Hash(&again), "parsing the same input twice gave different results")

	for _, p := range []struct {
		name string
		want string
		fn   func(I) (O, bool)
	}{
		{"part1", sample.Part1, s.Part1},
		{"part2", sample.Part2, s.Part2},
	} {
		if p.want == "" {
			continue
		}
		t.Run(p.name, func(t *testing.T) {
			got, ok := p.fn(in)
			require.True(t, ok, "%s returned no answer", p.name)
			require.Equal(t, p.want, fmt.Sprint(got))
		})
	}
}

func parse[I, O any](t *testing.T, s aoc.Solution[I, O], input string) I {
	t.Helper()
	in, err := s.Parse(strings.NewReader(input))
	require.NoError(t, err)
	return in
}
