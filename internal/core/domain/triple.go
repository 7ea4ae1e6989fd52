package domain

import (
	"sort"
	"strconv"
	"strings"
)

// TripleSize is the number of readings drawn into a combination.
const TripleSize = 3

// Triple is a combination of three readings, held in the order they were
// encountered in the input sequence. Combinations are drawn by position, so
// duplicate readings in the input are distinct draw slots.
type Triple [TripleSize]float64

// Sum returns the sum of the three readings.
func (t Triple) Sum() float64 {
	return t[0] + t[1] + t[2]
}

// Mean returns the exact arithmetic mean of the three readings.
func (t Triple) Mean() float64 {
	return t.Sum() / TripleSize
}

// Sorted returns a copy of the triple with its readings in ascending order.
// The receiver is not modified.
func (t Triple) Sorted() Triple {
	sorted := t
	sort.Float64s(sorted[:])
	return sorted
}

// String renders the triple as "(a, b, c)" in encountered order, using the
// shortest decimal representation for each reading.
func (t Triple) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range t {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte(')')
	return b.String()
}
