package service

import "errors"

// ErrPermissionDenied is returned when the caller lacks the role an
// operation requires.
var ErrPermissionDenied = errors.New("permission denied")
