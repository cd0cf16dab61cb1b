package iprangetable

import (
	"fmt"
	"net/netip"
	"sync"

	"github.com/hansthienpondt/nipam/pkg/table"
	"github.com/henderiw/ivltable/pkg/interval"
	"github.com/henderiw/ivltable/pkg/interval/ipinterval"
	"github.com/henderiw/ivltable/pkg/ivltable"
	"go4.org/netipx"
	"k8s.io/apimachinery/pkg/labels"
)

// IPRangeTable claims IP ranges inside a bounding range and carries a
// route payload per claim. Ranges use "from-to" notation,
// e.g. "10.0.0.10-10.0.0.20".
type IPRangeTable interface {
	Get(rng string) (table.Route, error)
	Claim(rng string, d table.Route) error
	Release(rng string) error
	Update(rng string, d table.Route) error

	Count() int
	Has(rng string) bool

	Free() []interval.Interval
	Conflicts() []interval.Interval

	GetAll() table.Routes
	GetByLabel(selector labels.Selector) table.Routes
}

func New(from, to netip.Addr) IPRangeTable {
	return &ipRangeTable{
		m:       new(sync.RWMutex),
		ranges:  ivltable.New(),
		routes:  map[string]table.Route{},
		ipRange: netipx.IPRangeFrom(from, to),
	}
}

type ipRangeTable struct {
	m       *sync.RWMutex
	ranges  ivltable.Table
	routes  map[string]table.Route
	ipRange netipx.IPRange
}

func (r *ipRangeTable) validateRange(rng string) (interval.Interval, error) {
	claim, err := ipinterval.Parse(rng)
	if err != nil {
		return nil, fmt.Errorf("ip range %s is invalid", rng)
	}
	bounds := ipinterval.New(r.ipRange.From(), r.ipRange.To())
	if !bounds.Contains(claim) {
		return nil, fmt.Errorf("ip range %s, does not fit in the range from %s to %s", rng, r.ipRange.From().String(), r.ipRange.To().String())
	}
	return claim, nil
}

func (r *ipRangeTable) Get(rng string) (table.Route, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	var route table.Route

	claim, err := r.validateRange(rng)
	if err != nil {
		return route, err
	}
	if _, ok := r.ranges.Find(claim); !ok {
		return route, fmt.Errorf("no match found for: %s", rng)
	}
	return r.routes[claim.String()], nil
}

func (r *ipRangeTable) Claim(rng string, d table.Route) error {
	r.m.Lock()
	defer r.m.Unlock()

	claim, err := r.validateRange(rng)
	if err != nil {
		return err
	}
	if _, ok := r.ranges.Find(claim); ok {
		return fmt.Errorf("claim failed range %s already claimed", rng)
	}
	r.ranges.Push(claim)
	r.routes[claim.String()] = d
	return nil
}

func (r *ipRangeTable) Release(rng string) error {
	r.m.Lock()
	defer r.m.Unlock()

	claim, err := r.validateRange(rng)
	if err != nil {
		return err
	}
	offset, ok := r.ranges.Find(claim)
	if !ok {
		return fmt.Errorf("no match found for: %s", rng)
	}
	if _, err := r.ranges.Remove(offset); err != nil {
		return err
	}
	delete(r.routes, claim.String())
	return nil
}

func (r *ipRangeTable) Update(rng string, d table.Route) error {
	r.m.Lock()
	defer r.m.Unlock()

	claim, err := r.validateRange(rng)
	if err != nil {
		return err
	}
	if _, ok := r.ranges.Find(claim); !ok {
		return fmt.Errorf("update failed range %s not claimed", rng)
	}
	r.routes[claim.String()] = d
	return nil
}

func (r *ipRangeTable) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.ranges.Count()
}

func (r *ipRangeTable) Has(rng string) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	claim, err := r.validateRange(rng)
	if err != nil {
		return false
	}
	_, ok := r.ranges.Find(claim)
	return ok
}

// Free returns the unclaimed IP space between the claimed ranges in
// ascending order.
func (r *ipRangeTable) Free() []interval.Interval {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.ranges.Gaps().GetAll()
}

// Conflicts returns the overlaps between claimed ranges in ascending
// order, one entry per overlap boundary crossing.
func (r *ipRangeTable) Conflicts() []interval.Interval {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.ranges.Intersections().GetAll()
}

func (r *ipRangeTable) GetAll() table.Routes {
	r.m.RLock()
	defer r.m.RUnlock()

	var routes table.Routes
	iter := r.ranges.Iterate()
	for iter.Next() {
		routes = append(routes, r.routes[iter.Value().String()])
	}
	return routes
}

func (r *ipRangeTable) GetByLabel(selector labels.Selector) table.Routes {
	r.m.RLock()
	defer r.m.RUnlock()

	var routes table.Routes
	iter := r.ranges.Iterate()
	for iter.Next() {
		route := r.routes[iter.Value().String()]
		if selector.Matches(route.Labels()) {
			routes = append(routes, route)
		}
	}
	return routes
}
