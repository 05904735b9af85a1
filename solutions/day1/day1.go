// Package day1 solves day 1: two columns of location IDs.
package day1

import (
	"io"
	"slices"

	"github.com/iainlane/aoc24"
)

// Lists holds the two columns, each sorted ascending.
type Lists struct {
	Left, Right []int64
}

// Day implements aoc.Solution for day 1.
type Day struct{}

func (Day) Parse(r io.Reader) (Lists, error) {
	var l Lists
	err := aoc.ForLines(r, func(_ int, line string) error {
		f, err := aoc.Fields(line, 2)
		if err != nil {
			return err
		}
		n, err := aoc.Ints(f...)
		if err != nil {
			return err
		}
		l.Left = append(l.Left, n[0])
		l.Right = append(l.Right, n[1])
		return nil
	})
	if err != nil {
		return Lists{}, err
	}
	slices.Sort(l.Left)
	slices.Sort(l.Right)
	return l, nil
}

// Part1 pairs the sorted columns up and sums the distance between each pair.
func (Day) Part1(l Lists) (int64, bool) {
	d := make([]int64, len(l.Left))
	for i, a := range l.Left {
		d[i] = aoc.AbsDiff(a, l.Right[i])
	}
	return aoc.Sum(d...), true
}

// Part2 sums each left value weighted by how often it occurs on the right.
func (Day) Part2(l Lists) (int64, bool) {
	counts := aoc.Counts(l.Right)
	w := make([]int64, len(l.Left))
	for i, a := range l.Left {
		w[i] = a * int64(counts[a])
	}
	return aoc.Sum(w...), true
}
