package service

import "errors"

// ErrNotConnected is returned when an operation requires connectivity but the
// client is offline. Progress accounting is server-authoritative and is never
// queued, so it is the main source of this error.
var ErrNotConnected = errors.New("client is not connected")
