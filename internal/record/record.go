// Package record defines the project record model shared by every storage
// backend and surface.
package record

import (
	"errors"
	"fmt"
	"sort"
)

// Common errors.
var (
	ErrInvalidRecord = errors.New("invalid record")
	ErrEmptyName     = fmt.Errorf("%w: name cannot be empty", ErrInvalidRecord)
	ErrEmptyArea     = fmt.Errorf("%w: area cannot be empty", ErrInvalidRecord)
	ErrNegativeCost  = fmt.Errorf("%w: cost cannot be negative", ErrInvalidRecord)
)

// Record represents one managed project: a name, an area label, and a cost.
// Name is the case-sensitive identity; two records are equal iff their names
// are equal.
type Record struct {
	name string
	area string
	cost float64
}

// New creates a validated record. It fails with an ErrInvalidRecord-wrapped
// error on empty name, empty area, or negative cost.
func New(name, area string, cost float64) (*Record, error) {
	r := &Record{}
	if err := r.SetName(name); err != nil {
		return nil, err
	}
	if err := r.SetArea(area); err != nil {
		return nil, err
	}
	if err := r.SetCost(cost); err != nil {
		return nil, err
	}
	return r, nil
}

// SetName replaces the record name. The record is unchanged on error.
func (r *Record) SetName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	r.name = name
	return nil
}

// SetArea replaces the area label. The record is unchanged on error.
func (r *Record) SetArea(area string) error {
	if area == "" {
		return ErrEmptyArea
	}
	r.area = area
	return nil
}

// SetCost replaces the cost. The record is unchanged on error.
func (r *Record) SetCost(cost float64) error {
	if cost < 0 {
		return ErrNegativeCost
	}
	r.cost = cost
	return nil
}

// Name returns the record name.
func (r *Record) Name() string { return r.name }

// Area returns the area label.
func (r *Record) Area() string { return r.area }

// Cost returns the cost.
func (r *Record) Cost() float64 { return r.cost }

// Equal reports whether two records have the same identity. Identity is
// keyed solely on name; area and cost do not participate.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.name == other.name
}

// String renders the record for display surfaces.
func (r *Record) String() string {
	return fmt.Sprintf("Project{name='%s', area='%s', cost=%.2f}", r.name, r.area, r.cost)
}

// SortByCost sorts records by cost ascending, the natural ordering.
func SortByCost(recs []*Record) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].cost < recs[j].cost
	})
}

// SortByName sorts records by name, the alternate ordering.
func SortByName(recs []*Record) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].name < recs[j].name
	})
}
