package ivltable

import "github.com/henderiw/ivltable/pkg/interval"

// Gaps returns the holes between the table's intervals as a new table,
// in ascending order. No returned gap touches or overlaps another
// returned gap or any input interval. The receiver is not mutated.
// An empty or single element table yields an empty result.
//
// The sweep walks the intervals in ascending start order and tracks a
// single envelope interval. The envelope is replaced by the current
// interval unless the envelope fully contains it; it is never merged
// with it, so in pathological orderings the envelope's trailing edge
// can move backward. Callers depend on this exact behavior.
func (r *table) Gaps() Table {
	sorted := r.SortedCopy(ByStart)
	gaps := New()

	var envelope interval.Interval
	iter := sorted.Iterate()
	for iter.Next() {
		ival := iter.Value()
		if envelope == nil {
			envelope = ival
			continue
		}
		if !envelope.Overlaps(ival) && !envelope.Abuts(ival) {
			gaps.Push(envelope.Gap(ival))
		}
		if !envelope.Contains(ival) {
			envelope = ival
		}
	}
	return gaps
}

// Intersections returns the pairwise overlaps between consecutive
// non-contained intervals as a new table, in ascending order. The
// receiver is not mutated. An empty or single element table yields an
// empty result.
//
// The sweep tracks a reference and a comparison interval. While a
// comparison is pending, an interval fully contained in the reference
// is skipped; otherwise it becomes the comparison, an overlap with the
// reference emits one intersection, and the reference moves forward
// unless it contains the comparison. This reports at most one
// intersection per overlap boundary crossing in the sorted order, not
// every pairwise intersection of a mutually overlapping cluster.
// Callers depend on this exact cardinality.
func (r *table) Intersections() Table {
	sorted := r.SortedCopy(ByStart)
	intersections := New()

	var reference, comparison interval.Interval
	iter := sorted.Iterate()
	for iter.Next() {
		ival := iter.Value()
		if reference == nil {
			reference = ival
			continue
		}
		if comparison != nil && reference.Contains(ival) {
			continue
		}
		comparison = ival
		if reference.Overlaps(comparison) {
			intersections.Push(reference.Intersect(comparison))
		}
		if !reference.Contains(comparison) {
			reference = comparison
			comparison = nil
		}
	}
	return intersections
}
