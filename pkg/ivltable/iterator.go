package ivltable

import "github.com/henderiw/ivltable/pkg/interval"

type Iterator struct {
	current int
	offsets []int
	table   map[int]interval.Interval
}

func (r *Iterator) Value() interval.Interval {
	return r.table[r.offsets[r.current]]
}

func (r *Iterator) Offset() int {
	return r.offsets[r.current]
}

func (r *Iterator) Next() bool {
	r.current++
	return r.current < len(r.offsets)
}
