package interval

// Interval is an immutable bounded range over an ordered domain.
// Implementations are value types; two intervals are equal iff their
// boundaries are equal.
type Interval interface {
	// CompareStart orders intervals by their start boundary:
	// -1 if the receiver starts before other, 0 if equal, 1 after.
	CompareStart(other Interval) int
	Equal(other Interval) bool
	// Overlaps reports whether the receiver and other share any point.
	Overlaps(other Interval) bool
	// Abuts reports whether the receiver and other share a boundary
	// with no overlap and no separation.
	Abuts(other Interval) bool
	// Contains reports full containment of other in the receiver.
	Contains(other Interval) bool
	// Gap returns the interval strictly between the receiver and
	// other. Only defined when the two neither overlap nor abut.
	Gap(other Interval) Interval
	// Intersect returns the common part of the receiver and other.
	// Only defined when Overlaps holds.
	Intersect(other Interval) Interval
	// Merge returns the smallest interval enclosing the receiver and
	// all others.
	Merge(others ...Interval) Interval
	String() string
}
