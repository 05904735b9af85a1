// Package solutions lists every implemented day.
package solutions

import (
	"github.com/iainlane/aoc24"
	"github.com/iainlane/aoc24/solutions/day1"
)

// Days is the registration table. Add new days here.
func Days() []aoc.Day {
	return []aoc.Day{
		{Num: 1, Run: aoc.Wrap[day1.Lists, int64](day1.Day{})},
	}
}

// Registry returns a Registry holding Days.
func Registry(opts ...aoc.Option) *aoc.Registry {
	return aoc.New(Days(), opts...)
}
