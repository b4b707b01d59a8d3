// Package serpentine spreads a ranked sequence over groups in boustrophedon order.
package serpentine

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// MinGroupSize is the smallest accepted target group size.
const MinGroupSize = 2

var ErrInvalidGroupSize = errors.New("group size must be at least 2")

// Direction is the traversal order of a sweep over the group indices.
type Direction int

const (
	Forward Direction = iota
	Reverse
)

func (d Direction) toggle() Direction {
	if d == Forward {
		return Reverse
	}
	return Forward
}

// Order returns the indices of scores sorted by score, highest first.
// The sort is stable: equal scores keep their input order.
func Order(scores []float64) []int {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(scores[b], scores[a])
	})
	return idx
}

// GroupCount is ceil(n / groupSize).
func GroupCount(n, groupSize int) int {
	return (n + groupSize - 1) / groupSize
}

// Distribute assigns ranked positions 0..n-1 to GroupCount(n, groupSize) groups.
//
// Each sweep hands one position to every group, starting Forward over indices
// 0..count-1 and switching direction after every sweep. The last sweep may be partial and
// then fills a prefix of its direction, so group sizes differ by at most one.
// An empty sequence yields no groups.
func Distribute(n, groupSize int) ([][]int, error) {
	if groupSize < MinGroupSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGroupSize, groupSize)
	}
	if n <= 0 {
		return nil, nil
	}
	count := GroupCount(n, groupSize)
	groups := make([][]int, count)
	for i := range groups {
		groups[i] = make([]int, 0, groupSize)
	}

	dir := Forward
	for pos := 0; pos < n; dir = dir.toggle() {
		for step := 0; step < count && pos < n; step++ {
			g := step
			if dir == Reverse {
				g = count - 1 - step
			}
			groups[g] = append(groups[g], pos)
			pos++
		}
	}
	return groups, nil
}
