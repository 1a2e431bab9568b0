package solver

import (
	"fmt"
	"strings"
)

// Stats counts search activity bucketed by depth (primary cost of the
// producing node). Duplicates are states popped after a better instance of
// the same canonical state was already visited.
type Stats struct {
	CreatedByDepth   []int
	DuplicateByDepth []int
	VisitedByDepth   []int
}

// add bumps the counter for depth, growing the bucket slice as needed.
// Reports whether a new depth was opened.
func add(counts *[]int, depth int) bool {
	grew := false
	for depth >= len(*counts) {
		*counts = append(*counts, 0)
		grew = true
	}
	(*counts)[depth]++
	return grew
}

func (s *Stats) addCreated(depth int) bool   { return add(&s.CreatedByDepth, depth) }
func (s *Stats) addDuplicate(depth int) bool { return add(&s.DuplicateByDepth, depth) }
func (s *Stats) addVisited(depth int) bool   { return add(&s.VisitedByDepth, depth) }

func total(counts []int) int {
	t := 0
	for _, c := range counts {
		t += c
	}
	return t
}

// TotalCreated returns the number of states generated.
func (s Stats) TotalCreated() int { return total(s.CreatedByDepth) }

// TotalDuplicate returns the number of stale states skipped on dequeue.
func (s Stats) TotalDuplicate() int { return total(s.DuplicateByDepth) }

// TotalVisited returns the number of unique states expanded.
func (s Stats) TotalVisited() int { return total(s.VisitedByDepth) }

// clone returns an independent copy, used for status callbacks.
func (s Stats) clone() Stats {
	return Stats{
		CreatedByDepth:   append([]int(nil), s.CreatedByDepth...),
		DuplicateByDepth: append([]int(nil), s.DuplicateByDepth...),
		VisitedByDepth:   append([]int(nil), s.VisitedByDepth...),
	}
}

// String renders a one-line-per-counter summary.
func (s Stats) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "states created: %d\n", s.TotalCreated())
	fmt.Fprintf(&sb, "reached duplicates: %d\n", s.TotalDuplicate())
	fmt.Fprintf(&sb, "states visited: %d", s.TotalVisited())
	return sb.String()
}
