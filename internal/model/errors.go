package model

import "errors"

var (
	// ErrIO wraps filesystem and read failures: missing root, unreadable file, interrupted read.
	ErrIO = errors.New("io error")
	// ErrConfiguration marks an invalid or unsupported configuration source.
	ErrConfiguration = errors.New("configuration error")
)
