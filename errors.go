package pixfmt

import (
	"errors"
	"fmt"
)

// Common errors for conversion operations.
var (
	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("pixfmt: invalid format")

	// ErrUnsupportedConversion is returned when no formula exists for a
	// (source, destination) pair. It is a static property of the pair.
	ErrUnsupportedConversion = errors.New("pixfmt: conversion not implemented")

	// ErrBufferSize is returned when a span length does not match
	// count times the format's storage width.
	ErrBufferSize = errors.New("pixfmt: buffer size mismatch")
)

// ConversionError identifies an unsupported conversion pair.
// It matches ErrUnsupportedConversion with errors.Is.
type ConversionError struct {
	Src, Dst Format
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("pixfmt: conversion %s -> %s not implemented", e.Src, e.Dst)
}

func (e *ConversionError) Unwrap() error {
	return ErrUnsupportedConversion
}

// SizeError reports a span whose length does not fit the requested pixel
// count. It matches ErrBufferSize with errors.Is.
type SizeError struct {
	// Buffer is "source" or "destination".
	Buffer string
	Format Format
	Got    int
	// Want is -1 when the requested count overflows an int byte length.
	Want int
}

func (e *SizeError) Error() string {
	if e.Want < 0 {
		return fmt.Sprintf("pixfmt: %s buffer is %d bytes, pixel count overflows for %s", e.Buffer, e.Got, e.Format)
	}
	return fmt.Sprintf("pixfmt: %s buffer is %d bytes, want %d for %s", e.Buffer, e.Got, e.Want, e.Format)
}

func (e *SizeError) Unwrap() error {
	return ErrBufferSize
}
