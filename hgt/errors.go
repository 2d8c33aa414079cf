package hgt

import "errors"

// Error kinds reported by a conversion. They are wrapped with context, so use errors.Is.
var (
	ErrFileNotFound          = errors.New("file not found")
	ErrUnsupportedSize       = errors.New("unsupported raster size")
	ErrUnsupportedProjection = errors.New("unsupported projection")
	ErrValueOutOfRange       = errors.New("value out of range")
	ErrIO                    = errors.New("i/o error")
)
