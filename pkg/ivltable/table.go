package ivltable

import (
	"sort"

	"github.com/henderiw/ivltable/pkg/interval"
)

// CompareFn orders two intervals: negative if a sorts before b,
// zero if equal, positive if a sorts after b.
type CompareFn func(a, b interval.Interval) int

// FilterFn reports whether an interval is kept.
type FilterFn func(i interval.Interval) bool

// ByStart orders intervals on their start boundary.
func ByStart(a, b interval.Interval) int { return a.CompareStart(b) }

// Table is an ordered, mutable collection of intervals addressed by a
// dense zero based offset. Offsets are contiguous 0..n-1 at all times;
// Remove re-indexes the higher offsets downward. Duplicate interval
// values are allowed.
//
// A Table is not safe for concurrent use. Mutating a table while an
// Iterator obtained from it is in progress is undefined.
type Table interface {
	Count() int
	IsEmpty() bool
	Iterate() *Iterator
	GetAll() []interval.Interval
	Clear()

	Get(offset int) (interval.Interval, error)
	Remove(offset int) (interval.Interval, error)
	Push(ivals ...interval.Interval)
	Set(offset int, ival interval.Interval) error

	Find(ival interval.Interval) (int, bool)
	Contains(ivals ...interval.Interval) bool
	BoundingInterval() (interval.Interval, bool)

	Sort(cmp CompareFn)
	SortedCopy(cmp CompareFn) Table
	FilteredCopy(keep FilterFn) Table
	Any(keep FilterFn) bool
	All(keep FilterFn) bool

	Gaps() Table
	Intersections() Table
}

func New(ivals ...interval.Interval) Table {
	r := &table{
		table: map[int]interval.Interval{},
		order: []int{},
	}
	r.Push(ivals...)
	return r
}

type table struct {
	table map[int]interval.Interval
	// order holds the offsets in iteration order. Sort reorders it
	// without renumbering, so an offset keeps addressing the same
	// value; only SortedCopy and FilteredCopy renumber.
	order []int
}

func (r *table) Count() int {
	return len(r.table)
}

func (r *table) IsEmpty() bool {
	return len(r.table) == 0
}

func (r *table) Iterate() *Iterator {
	offsets := make([]int, len(r.order))
	copy(offsets, r.order)

	return &Iterator{current: -1, offsets: offsets, table: r.table}
}

func (r *table) GetAll() []interval.Interval {
	ivals := make([]interval.Interval, 0, len(r.table))

	iter := r.Iterate()
	for iter.Next() {
		ivals = append(ivals, iter.Value())
	}
	return ivals
}

func (r *table) Clear() {
	r.table = map[int]interval.Interval{}
	r.order = []int{}
}

func (r *table) Get(offset int) (interval.Interval, error) {
	ival, ok := r.table[offset]
	if !ok {
		return nil, &InvalidIndexError{Offset: offset}
	}
	return ival, nil
}

func (r *table) Remove(offset int) (interval.Interval, error) {
	removed, ok := r.table[offset]
	if !ok {
		return nil, &InvalidIndexError{Offset: offset}
	}
	delete(r.table, offset)

	reindexed := make(map[int]interval.Interval, len(r.table))
	for o, ival := range r.table {
		if o > offset {
			o--
		}
		reindexed[o] = ival
	}
	r.table = reindexed

	order := make([]int, 0, len(r.order)-1)
	for _, o := range r.order {
		switch {
		case o == offset:
			// dropped
		case o > offset:
			order = append(order, o-1)
		default:
			order = append(order, o)
		}
	}
	r.order = order

	return removed, nil
}

func (r *table) Push(ivals ...interval.Interval) {
	for _, ival := range ivals {
		offset := len(r.table)
		r.table[offset] = ival
		r.order = append(r.order, offset)
	}
}

func (r *table) Set(offset int, ival interval.Interval) error {
	if _, ok := r.table[offset]; !ok {
		return &InvalidIndexError{Offset: offset}
	}
	r.table[offset] = ival
	return nil
}

// Find returns the offset of the first element equal to ival by value.
func (r *table) Find(ival interval.Interval) (int, bool) {
	iter := r.Iterate()
	for iter.Next() {
		if iter.Value().Equal(ival) {
			return iter.Offset(), true
		}
	}
	return 0, false
}

func (r *table) Contains(ivals ...interval.Interval) bool {
	for _, ival := range ivals {
		if _, ok := r.Find(ival); !ok {
			return false
		}
	}
	return true
}

// BoundingInterval returns the smallest interval enclosing every
// member, or false on an empty table.
func (r *table) BoundingInterval() (interval.Interval, bool) {
	iter := r.Iterate()
	if !iter.Next() {
		return nil, false
	}
	first := iter.Value()
	rest := make([]interval.Interval, 0, len(r.table)-1)
	for iter.Next() {
		rest = append(rest, iter.Value())
	}
	return first.Merge(rest...), true
}

// Sort reorders the table in place. Offsets are not renumbered: every
// offset keeps addressing the value it addressed before the call, only
// the iteration order changes.
func (r *table) Sort(cmp CompareFn) {
	sort.SliceStable(r.order, func(i, j int) bool {
		return cmp(r.table[r.order[i]], r.table[r.order[j]]) < 0
	})
}

// SortedCopy returns a new table with the elements renumbered 0..n-1
// in cmp order. If the table is already in cmp order the receiver
// itself is returned.
func (r *table) SortedCopy(cmp CompareFn) Table {
	sorted := make([]int, len(r.order))
	copy(sorted, r.order)
	sort.SliceStable(sorted, func(i, j int) bool {
		return cmp(r.table[sorted[i]], r.table[sorted[j]]) < 0
	})

	if equalOrder(sorted, r.order) {
		return r
	}

	ivals := make([]interval.Interval, 0, len(sorted))
	for _, o := range sorted {
		ivals = append(ivals, r.table[o])
	}
	return New(ivals...)
}

// FilteredCopy returns a new table holding the elements that satisfy
// keep, in their current relative order, renumbered from 0. If every
// element satisfies keep the receiver itself is returned.
func (r *table) FilteredCopy(keep FilterFn) Table {
	ivals := make([]interval.Interval, 0, len(r.order))
	iter := r.Iterate()
	for iter.Next() {
		if keep(iter.Value()) {
			ivals = append(ivals, iter.Value())
		}
	}

	if len(ivals) == len(r.order) {
		return r
	}
	return New(ivals...)
}

func (r *table) Any(keep FilterFn) bool {
	iter := r.Iterate()
	for iter.Next() {
		if keep(iter.Value()) {
			return true
		}
	}
	return false
}

// All reports whether every element satisfies keep. An empty table
// returns false, not the vacuous truth.
func (r *table) All(keep FilterFn) bool {
	if len(r.table) == 0 {
		return false
	}
	iter := r.Iterate()
	for iter.Next() {
		if !keep(iter.Value()) {
			return false
		}
	}
	return true
}

func equalOrder(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
