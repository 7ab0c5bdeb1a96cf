package member

import "errors"

// ErrVersionConflict reports a lost optimistic-locking race; the caller should
// re-read the member and retry.
var ErrVersionConflict = errors.New("member was modified concurrently")
