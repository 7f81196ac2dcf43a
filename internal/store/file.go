package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/prj/internal/record"
)

// recordExt is the extension appended to every derived file key.
const recordExt = ".txt"

// whitespaceRun matches runs of whitespace collapsed to "_" during key
// derivation.
var whitespaceRun = regexp.MustCompile(`\s+`)

// FileStore persists one record per file in a flat directory. The file name
// is derived from the record name (lowercased, whitespace runs collapsed to
// a single underscore); the body is exactly three lines: name, area, cost.
//
// Distinct names that normalize to the same key share a storage slot; the
// collision is not detected beyond Add failing with ErrDuplicateKey. Writes
// are not atomic and there is no cross-process locking: concurrent writers
// to the same key race with no defined winner.
type FileStore struct {
	dir    string
	logger *zap.Logger
}

// NewFileStore creates a file store rooted at dir, creating the directory
// if it does not exist.
func NewFileStore(dir string, logger *zap.Logger) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("store directory is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create store directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

// Dir returns the store directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// keyFor derives the filesystem-safe key for a record name.
func keyFor(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "_") + recordExt
}

// pathFor returns the file path holding the record with the given name.
func (s *FileStore) pathFor(name string) string {
	return filepath.Join(s.dir, keyFor(name))
}

// encode renders a record as its three-line file body.
func encode(rec *record.Record) []byte {
	cost := strconv.FormatFloat(rec.Cost(), 'f', -1, 64)
	return []byte(rec.Name() + "\n" + rec.Area() + "\n" + cost + "\n")
}

// parseFile reads and parses one record file. Malformed content (wrong line
// count, unparsable cost, fields that fail record validation) is reported as
// an ErrCorruptRecord-wrapped error.
func (s *FileStore) parseFile(path string) (*record.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	body := strings.ReplaceAll(string(data), "\r\n", "\n")
	body = strings.TrimSuffix(body, "\n")
	lines := strings.Split(body, "\n")
	if len(lines) != 3 {
		return nil, fmt.Errorf("%w: %s: expected 3 lines, got %d", ErrCorruptRecord, filepath.Base(path), len(lines))
	}

	// Comma decimal separators are normalized to dot before parsing.
	cost, err := strconv.ParseFloat(strings.ReplaceAll(lines[2], ",", "."), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: invalid cost %q", ErrCorruptRecord, filepath.Base(path), lines[2])
	}

	rec, err := record.New(lines[0], lines[1], cost)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptRecord, filepath.Base(path), err)
	}
	return rec, nil
}

// Add persists a new record. It fails with ErrDuplicateKey if the derived
// file already exists, including when a differently-named record normalized
// to the same key.
func (s *FileStore) Add(ctx context.Context, rec *record.Record) error {
	path := s.pathFor(rec.Name())
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, rec.Name())
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, encode(rec), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Get retrieves a record by name. A missing file returns (nil, false, nil);
// a file that exists but cannot be parsed returns an ErrCorruptRecord-
// wrapped error so the caller can tell corruption from absence.
func (s *FileStore) Get(ctx context.Context, name string) (*record.Record, bool, error) {
	path := s.pathFor(name)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	rec, err := s.parseFile(path)
	if err != nil {
		return nil, false, err
	}
	return rec, true, nil
}

// Update replaces an existing record in place.
func (s *FileStore) Update(ctx context.Context, rec *record.Record) error {
	path := s.pathFor(rec.Name())
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, rec.Name())
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, encode(rec), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Delete removes a record by name.
func (s *FileStore) Delete(ctx context.Context, name string) error {
	path := s.pathFor(name)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	return nil
}

// scan parses every regular file in the store directory, invoking keep for
// each readable record. Unparsable entries are logged, collected as
// ScanFailures, and skipped.
func (s *FileStore) scan(keep func(*record.Record)) ([]ScanFailure, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read store directory %s: %w", s.dir, err)
	}

	var failures []ScanFailure
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		rec, err := s.parseFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			s.logger.Warn("skipping unreadable record file",
				zap.String("file", entry.Name()),
				zap.Error(err),
			)
			failures = append(failures, ScanFailure{Key: entry.Name(), Err: err})
			continue
		}
		keep(rec)
	}
	return failures, nil
}

// List returns every readable record in directory enumeration order, which
// is not guaranteed stable.
func (s *FileStore) List(ctx context.Context) ([]*record.Record, []ScanFailure, error) {
	var recs []*record.Record
	failures, err := s.scan(func(rec *record.Record) {
		recs = append(recs, rec)
	})
	if err != nil {
		return nil, nil, err
	}
	return recs, failures, nil
}

// ListAboveCost returns readable records with cost strictly greater than
// threshold.
func (s *FileStore) ListAboveCost(ctx context.Context, threshold float64) ([]*record.Record, []ScanFailure, error) {
	var recs []*record.Record
	failures, err := s.scan(func(rec *record.Record) {
		if rec.Cost() > threshold {
			recs = append(recs, rec)
		}
	})
	if err != nil {
		return nil, nil, err
	}
	return recs, failures, nil
}

// CountByCriteria counts readable records with cost >= minCost and the
// exact area.
func (s *FileStore) CountByCriteria(ctx context.Context, minCost float64, area string) (int, []ScanFailure, error) {
	count := 0
	failures, err := s.scan(func(rec *record.Record) {
		if rec.Cost() >= minCost && rec.Area() == area {
			count++
		}
	})
	if err != nil {
		return 0, nil, err
	}
	return count, failures, nil
}

// Files returns the raw file names present in the store directory,
// including any that do not parse as records.
func (s *FileStore) Files(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read store directory %s: %w", s.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}
