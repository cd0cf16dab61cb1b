package interval64

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/henderiw/ivltable/pkg/interval"
)

// i64 is a half open interval [from, to) over uint64.
type i64 struct {
	from uint64
	to   uint64
}

// New returns the half open interval [from, to).
func New(from, to uint64) interval.Interval {
	return i64{from: from, to: to}
}

// Parse parses an interval in "from-to" notation.
func Parse(s string) (interval.Interval, error) {
	h := strings.IndexByte(s, '-')
	if h == -1 {
		return nil, fmt.Errorf("no hyphen in interval %q", s)
	}
	from, to := s[:h], s[h+1:]
	fromUint64, err := strconv.ParseUint(from, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid from boundary %q in interval %q", from, s)
	}
	toUint64, err := strconv.ParseUint(to, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid to boundary %q in interval %q", to, s)
	}
	return i64{from: fromUint64, to: toUint64}, nil
}

// From returns the inclusive lower boundary of r.
func (r i64) From() uint64 { return r.from }

// To returns the exclusive upper boundary of r.
func (r i64) To() uint64 { return r.to }

func (r i64) String() string {
	return fmt.Sprintf("%d-%d", r.from, r.to)
}

func (r i64) CompareStart(other interval.Interval) int {
	o := other.(i64)
	switch {
	case r.from < o.from:
		return -1
	case r.from > o.from:
		return 1
	default:
		return 0
	}
}

func (r i64) Equal(other interval.Interval) bool {
	o := other.(i64)
	return r == o
}

func (r i64) Overlaps(other interval.Interval) bool {
	o := other.(i64)
	return r.from < o.to && o.from < r.to
}

func (r i64) Abuts(other interval.Interval) bool {
	o := other.(i64)
	return r.to == o.from || o.to == r.from
}

func (r i64) Contains(other interval.Interval) bool {
	o := other.(i64)
	return r.from <= o.from && o.to <= r.to
}

func (r i64) Gap(other interval.Interval) interval.Interval {
	o := other.(i64)
	if r.to < o.from {
		return i64{from: r.to, to: o.from}
	}
	return i64{from: o.to, to: r.from}
}

func (r i64) Intersect(other interval.Interval) interval.Interval {
	o := other.(i64)
	from := r.from
	if o.from > from {
		from = o.from
	}
	to := r.to
	if o.to < to {
		to = o.to
	}
	return i64{from: from, to: to}
}

func (r i64) Merge(others ...interval.Interval) interval.Interval {
	merged := r
	for _, other := range others {
		o := other.(i64)
		if o.from < merged.from {
			merged.from = o.from
		}
		if o.to > merged.to {
			merged.to = o.to
		}
	}
	return merged
}
