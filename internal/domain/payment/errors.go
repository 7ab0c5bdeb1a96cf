package payment

import "errors"

// ErrAlreadyFinal is returned when a state transition is attempted on a
// payment that already reached Successful or Failed.
var ErrAlreadyFinal = errors.New("payment already reached a terminal status")
