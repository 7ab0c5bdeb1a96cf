package membership

import "errors"

// ErrVersionConflict reports a lost optimistic-locking race on a period row.
var ErrVersionConflict = errors.New("membership period was modified concurrently")
