package slottable

import (
	"fmt"
	"sync"

	"github.com/henderiw/ivltable/pkg/interval"
	"github.com/henderiw/ivltable/pkg/ivltable"
	"k8s.io/apimachinery/pkg/labels"
)

// SlotTable books labeled interval slots inside a bounding interval.
// Overlapping bookings are allowed and surfaced through Conflicts;
// exact duplicate bookings are rejected.
type SlotTable interface {
	Get(ival interval.Interval) (labels.Set, error)
	Claim(ival interval.Interval, d labels.Set) error
	Release(ival interval.Interval) error
	Update(ival interval.Interval, d labels.Set) error

	Count() int
	Has(ival interval.Interval) bool

	FindFree() (interval.Interval, error)
	Free() []interval.Interval
	Conflicts() []interval.Interval

	GetAll() map[string]labels.Set
	GetByLabel(selector labels.Selector) map[string]labels.Set
}

func New(bounds interval.Interval) SlotTable {
	return &slotTable{
		m:      new(sync.RWMutex),
		slots:  ivltable.New(),
		data:   map[string]labels.Set{},
		bounds: bounds,
	}
}

type slotTable struct {
	m      *sync.RWMutex
	slots  ivltable.Table
	data   map[string]labels.Set
	bounds interval.Interval
}

func (r *slotTable) validate(ival interval.Interval) error {
	if !r.bounds.Contains(ival) {
		return fmt.Errorf("slot %s does not fit in the table bounds %s", ival.String(), r.bounds.String())
	}
	return nil
}

func (r *slotTable) Get(ival interval.Interval) (labels.Set, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	if _, ok := r.slots.Find(ival); !ok {
		return nil, fmt.Errorf("no slot found for: %s", ival.String())
	}
	return r.data[ival.String()], nil
}

func (r *slotTable) Claim(ival interval.Interval, d labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	if err := r.validate(ival); err != nil {
		return err
	}
	if _, ok := r.slots.Find(ival); ok {
		return fmt.Errorf("slot %s is already claimed", ival.String())
	}
	r.slots.Push(ival)
	r.data[ival.String()] = d
	return nil
}

func (r *slotTable) Release(ival interval.Interval) error {
	r.m.Lock()
	defer r.m.Unlock()

	offset, ok := r.slots.Find(ival)
	if !ok {
		return fmt.Errorf("no slot found for: %s", ival.String())
	}
	if _, err := r.slots.Remove(offset); err != nil {
		return err
	}
	delete(r.data, ival.String())
	return nil
}

func (r *slotTable) Update(ival interval.Interval, d labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	if _, ok := r.slots.Find(ival); !ok {
		return fmt.Errorf("no slot found for: %s", ival.String())
	}
	r.data[ival.String()] = d
	return nil
}

func (r *slotTable) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.slots.Count()
}

func (r *slotTable) Has(ival interval.Interval) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.slots.Find(ival)
	return ok
}

// FindFree returns the first hole between the claimed slots in
// ascending order.
func (r *slotTable) FindFree() (interval.Interval, error) {
	free := r.Free()
	if len(free) == 0 {
		return nil, fmt.Errorf("no free slot found")
	}
	return free[0], nil
}

// Free returns the holes between the claimed slots in ascending order.
func (r *slotTable) Free() []interval.Interval {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.slots.Gaps().GetAll()
}

// Conflicts returns the overlaps between claimed slots in ascending
// order, one entry per overlap boundary crossing.
func (r *slotTable) Conflicts() []interval.Interval {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.slots.Intersections().GetAll()
}

func (r *slotTable) GetAll() map[string]labels.Set {
	r.m.RLock()
	defer r.m.RUnlock()

	entries := make(map[string]labels.Set, r.slots.Count())

	iter := r.slots.Iterate()
	for iter.Next() {
		entries[iter.Value().String()] = r.data[iter.Value().String()]
	}
	return entries
}

func (r *slotTable) GetByLabel(selector labels.Selector) map[string]labels.Set {
	r.m.RLock()
	defer r.m.RUnlock()

	entries := map[string]labels.Set{}

	iter := r.slots.Iterate()
	for iter.Next() {
		d := r.data[iter.Value().String()]
		if selector.Matches(d) {
			entries[iter.Value().String()] = d
		}
	}
	return entries
}
