package slottable

import (
	"testing"

	"github.com/henderiw/ivltable/pkg/interval/interval64"
	"github.com/tj/assert"
	"k8s.io/apimachinery/pkg/labels"
)

func TestClaim(t *testing.T) {
	cases := map[string]struct {
		bounds            string
		newSuccessEntries map[string]labels.Set
		newFailedEntries  map[string]labels.Set
		expectedEntries   int
	}{
		"Normal": {
			bounds: "0-100",
			newSuccessEntries: map[string]labels.Set{
				"10-20": {"purpose": "maintenance"},
				"30-40": {},
			},
			newFailedEntries: map[string]labels.Set{
				"90-110": {},
			},
			expectedEntries: 2,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			bounds, err := interval64.Parse(tc.bounds)
			assert.NoError(t, err)

			r := New(bounds)

			for s, d := range tc.newSuccessEntries {
				ival, err := interval64.Parse(s)
				assert.NoError(t, err)
				err = r.Claim(ival, d)
				assert.NoError(t, err)
			}
			for s, d := range tc.newFailedEntries {
				ival, err := interval64.Parse(s)
				assert.NoError(t, err)
				err = r.Claim(ival, d)
				assert.Error(t, err)
			}
			for s := range tc.newSuccessEntries {
				ival, err := interval64.Parse(s)
				assert.NoError(t, err)
				if !r.Has(ival) {
					t.Errorf("%s expecting success claim entry: %s\n", name, s)
				}
			}
			for s := range tc.newFailedEntries {
				ival, err := interval64.Parse(s)
				assert.NoError(t, err)
				if r.Has(ival) {
					t.Errorf("%s no expecting failed claim entry: %s\n", name, s)
				}
			}
			if r.Count() != tc.expectedEntries {
				t.Errorf("%s: -want %d, +got: %d\n", name, tc.expectedEntries, len(r.GetAll()))
			}
		})
	}
}

func TestClaimDuplicate(t *testing.T) {
	r := New(interval64.New(0, 100))

	err := r.Claim(interval64.New(10, 20), nil)
	assert.NoError(t, err)

	err = r.Claim(interval64.New(10, 20), nil)
	assert.Error(t, err)
}

func TestRelease(t *testing.T) {
	r := New(interval64.New(0, 100))

	err := r.Claim(interval64.New(10, 20), nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, r.Count())

	err = r.Release(interval64.New(10, 20))
	assert.NoError(t, err)
	assert.Equal(t, 0, r.Count())
	assert.False(t, r.Has(interval64.New(10, 20)))

	// released slot can be claimed again
	err = r.Claim(interval64.New(10, 20), nil)
	assert.NoError(t, err)

	err = r.Release(interval64.New(50, 60))
	assert.Error(t, err)
}

func TestFindFree(t *testing.T) {
	r := New(interval64.New(0, 100))

	_, err := r.FindFree()
	assert.Error(t, err)

	err = r.Claim(interval64.New(0, 10), nil)
	assert.NoError(t, err)
	err = r.Claim(interval64.New(40, 50), nil)
	assert.NoError(t, err)
	err = r.Claim(interval64.New(20, 30), nil)
	assert.NoError(t, err)

	free, err := r.FindFree()
	assert.NoError(t, err)
	assert.Equal(t, "10-20", free.String())

	holes := r.Free()
	assert.Equal(t, 2, len(holes))
	assert.Equal(t, "10-20", holes[0].String())
	assert.Equal(t, "30-40", holes[1].String())
}

func TestConflicts(t *testing.T) {
	r := New(interval64.New(0, 100))

	err := r.Claim(interval64.New(0, 20), labels.Set{"team": "red"})
	assert.NoError(t, err)
	err = r.Claim(interval64.New(10, 30), labels.Set{"team": "blue"})
	assert.NoError(t, err)

	conflicts := r.Conflicts()
	assert.Equal(t, 1, len(conflicts))
	assert.Equal(t, "10-20", conflicts[0].String())
}

func TestGetByLabel(t *testing.T) {
	r := New(interval64.New(0, 100))

	err := r.Claim(interval64.New(0, 10), labels.Set{"team": "red"})
	assert.NoError(t, err)
	err = r.Claim(interval64.New(20, 30), labels.Set{"team": "blue"})
	assert.NoError(t, err)

	entries := r.GetByLabel(labels.SelectorFromSet(labels.Set{"team": "red"}))
	assert.Equal(t, 1, len(entries))
	if _, ok := entries["0-10"]; !ok {
		t.Errorf("expecting entry by label: %s\n", "0-10")
	}

	entries = r.GetByLabel(labels.Everything())
	assert.Equal(t, 2, len(entries))
}

func TestUpdate(t *testing.T) {
	r := New(interval64.New(0, 100))

	err := r.Update(interval64.New(10, 20), labels.Set{"a": "b"})
	assert.Error(t, err)

	err = r.Claim(interval64.New(10, 20), nil)
	assert.NoError(t, err)

	err = r.Update(interval64.New(10, 20), labels.Set{"a": "b"})
	assert.NoError(t, err)

	d, err := r.Get(interval64.New(10, 20))
	assert.NoError(t, err)
	assert.Equal(t, labels.Set{"a": "b"}, d)
}
