package logbook

import (
	"errors"
	"syscall"
)

// Error kinds surfaced by the store. Wrapped errors keep the underlying cause.
var (
	// ErrStorageUnavailable covers missing directories, permissions, and other I/O failures.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrQuotaExceeded is returned when the device or user quota is full.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	// ErrSerialization indicates data that could not be encoded or decoded.
	ErrSerialization = errors.New("serialization error")
	// ErrUnsupportedFormat is returned for file extensions without a codec.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// classify picks the error kind for an I/O failure.
func classify(err error) error {
	if errors.Is(err, syscall.ENOSPC) || errors.Is(err, syscall.EDQUOT) {
		return ErrQuotaExceeded
	}
	return ErrStorageUnavailable
}
