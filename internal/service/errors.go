package service

import "errors"

// ErrNotFound is returned when a record does not exist or is owned by a
// different user. The two cases are deliberately indistinguishable so
// other users' data is never leaked through error responses.
var ErrNotFound = errors.New("not found")

// ErrInvalidCredentials is returned on any email/password mismatch,
// without revealing which of the two was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")
