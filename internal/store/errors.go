package store

import "errors"

// Errors for store operations. Backends wrap these with context; callers
// test with errors.Is.
var (
	ErrDuplicateKey  = errors.New("record already exists")
	ErrNotFound      = errors.New("record not found")
	ErrCorruptRecord = errors.New("corrupt record")
)
