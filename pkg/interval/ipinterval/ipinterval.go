package ipinterval

import (
	"net/netip"

	"github.com/henderiw/ivltable/pkg/interval"
	"go4.org/netipx"
)

// ipRange is an interval over IP address space with inclusive
// boundaries, backed by a netipx.IPRange.
type ipRange struct {
	r netipx.IPRange
}

// New returns the inclusive interval from-to over IP address space.
func New(from, to netip.Addr) interval.Interval {
	return ipRange{r: netipx.IPRangeFrom(from, to)}
}

// Parse parses an interval in "from-to" notation, e.g. "10.0.0.10-10.0.0.20".
func Parse(s string) (interval.Interval, error) {
	r, err := netipx.ParseIPRange(s)
	if err != nil {
		return nil, err
	}
	return ipRange{r: r}, nil
}

// From returns the inclusive lower boundary of r.
func (r ipRange) From() netip.Addr { return r.r.From() }

// To returns the inclusive upper boundary of r.
func (r ipRange) To() netip.Addr { return r.r.To() }

func (r ipRange) String() string {
	return r.r.String()
}

func (r ipRange) CompareStart(other interval.Interval) int {
	o := other.(ipRange)
	return r.r.From().Compare(o.r.From())
}

func (r ipRange) Equal(other interval.Interval) bool {
	o := other.(ipRange)
	return r.r == o.r
}

func (r ipRange) Overlaps(other interval.Interval) bool {
	o := other.(ipRange)
	return r.r.Overlaps(o.r)
}

func (r ipRange) Abuts(other interval.Interval) bool {
	o := other.(ipRange)
	return r.r.To().Next() == o.r.From() || o.r.To().Next() == r.r.From()
}

func (r ipRange) Contains(other interval.Interval) bool {
	o := other.(ipRange)
	return r.r.From().Compare(o.r.From()) <= 0 && o.r.To().Compare(r.r.To()) <= 0
}

func (r ipRange) Gap(other interval.Interval) interval.Interval {
	o := other.(ipRange)
	if r.r.To().Less(o.r.From()) {
		return ipRange{r: netipx.IPRangeFrom(r.r.To().Next(), o.r.From().Prev())}
	}
	return ipRange{r: netipx.IPRangeFrom(o.r.To().Next(), r.r.From().Prev())}
}

func (r ipRange) Intersect(other interval.Interval) interval.Interval {
	o := other.(ipRange)
	from := r.r.From()
	if from.Less(o.r.From()) {
		from = o.r.From()
	}
	to := r.r.To()
	if o.r.To().Less(to) {
		to = o.r.To()
	}
	return ipRange{r: netipx.IPRangeFrom(from, to)}
}

func (r ipRange) Merge(others ...interval.Interval) interval.Interval {
	from := r.r.From()
	to := r.r.To()
	for _, other := range others {
		o := other.(ipRange)
		if o.r.From().Less(from) {
			from = o.r.From()
		}
		if to.Less(o.r.To()) {
			to = o.r.To()
		}
	}
	return ipRange{r: netipx.IPRangeFrom(from, to)}
}
