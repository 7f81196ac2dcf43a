// Package store provides the storage contract for project records and its
// two backends: a volatile in-memory map and a flat-file directory store.
package store

import (
	"context"

	"github.com/fyrsmithlabs/prj/internal/record"
)

// ScanFailure reports one record that could not be read during an
// enumeration. Key identifies the offending entry (the record name for the
// memory backend, the file name for the file backend).
type ScanFailure struct {
	Key string
	Err error
}

// Store is the contract every backend implements. All operations are keyed
// by record name.
//
// Enumeration operations (List, ListAboveCost, CountByCriteria) have
// partial-result semantics: entries that cannot be read are skipped and
// reported in the returned ScanFailure slice, and the operation still
// succeeds. The caller decides whether a partial result is acceptable.
type Store interface {
	// Add persists a new record. It fails with ErrDuplicateKey if a record
	// with the same name (or, for the file backend, the same derived key)
	// already exists.
	Add(ctx context.Context, rec *record.Record) error

	// Get retrieves a record by name. A miss is not an error: it returns
	// (nil, false, nil). The file backend returns (nil, false, err) with an
	// ErrCorruptRecord-wrapped error when the stored entry exists but cannot
	// be parsed.
	Get(ctx context.Context, name string) (*record.Record, bool, error)

	// Update replaces an existing record in place, keyed by name. It fails
	// with ErrNotFound if no record with that name exists.
	Update(ctx context.Context, rec *record.Record) error

	// Delete removes a record by name. It fails with ErrNotFound if absent.
	Delete(ctx context.Context, name string) error

	// List returns every readable record. Order is backend-defined:
	// insertion order for the memory backend, directory enumeration order
	// (not guaranteed stable) for the file backend.
	List(ctx context.Context) ([]*record.Record, []ScanFailure, error)

	// ListAboveCost returns records with cost strictly greater than
	// threshold.
	ListAboveCost(ctx context.Context, threshold float64) ([]*record.Record, []ScanFailure, error)

	// CountByCriteria counts records with cost >= minCost and an area label
	// equal to area, case-sensitively.
	CountByCriteria(ctx context.Context, minCost float64, area string) (int, []ScanFailure, error)
}
