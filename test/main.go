package main

import (
	"fmt"

	"github.com/henderiw/ivltable/pkg/interval/interval64"
	"github.com/henderiw/ivltable/pkg/ivltable"
	"github.com/henderiw/ivltable/pkg/slottable"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/selection"
)

var values = []struct {
	ival   string
	labels map[string]string
}{
	{ival: "0-10", labels: map[string]string{"team": "red"}},
	{ival: "40-50", labels: map[string]string{"team": "red"}},
	{ival: "20-30", labels: map[string]string{"team": "blue"}},
	{ival: "25-35", labels: map[string]string{"team": "blue"}},
}

func main() {
	tbl := ivltable.New()
	for _, v := range values {
		ival, err := interval64.Parse(v.ival)
		if err != nil {
			panic(err)
		}
		tbl.Push(ival)
	}

	fmt.Println("intervals", tbl.GetAll())
	if bounding, ok := tbl.BoundingInterval(); ok {
		fmt.Println("bounding", bounding)
	}

	gaps := tbl.Gaps()
	iter := gaps.Iterate()
	for iter.Next() {
		fmt.Println("gap", iter.Offset(), iter.Value())
	}

	intersections := tbl.Intersections()
	iter = intersections.Iterate()
	for iter.Next() {
		fmt.Println("intersection", iter.Offset(), iter.Value())
	}

	st := slottable.New(interval64.New(0, 100))
	for _, v := range values {
		ival, err := interval64.Parse(v.ival)
		if err != nil {
			panic(err)
		}
		if err := st.Claim(ival, v.labels); err != nil {
			panic(err)
		}
	}

	free, err := st.FindFree()
	if err != nil {
		panic(err)
	}
	fmt.Println("first free slot", free)

	for _, conflict := range st.Conflicts() {
		fmt.Println("conflict", conflict)
	}

	ls, err := GetLabelSelector(map[string]string{"team": "blue"})
	if err != nil {
		panic(err)
	}
	for s, d := range st.GetByLabel(ls) {
		fmt.Println("slot by label", s, d)
	}
}

func GetLabelSelector(l map[string]string) (labels.Selector, error) {
	fullselector := labels.NewSelector()
	for k, v := range l {
		req, err := labels.NewRequirement(k, selection.Equals, []string{v})
		if err != nil {
			return nil, err
		}
		fullselector = fullselector.Add(*req)
	}
	return fullselector, nil
}
