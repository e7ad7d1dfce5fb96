package service

import (
	"errors"
	"fmt"
)

// Common service errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrUploadFailed is returned when the object store rejected or timed out a photo upload
	ErrUploadFailed = errors.New("photo upload failed")
)

var (
	// ErrFinchNotFound is returned when a finch is not found
	ErrFinchNotFound = fmt.Errorf("%w: finch", ErrNotFound)

	// ErrToyNotFound is returned when a toy is not found
	ErrToyNotFound = fmt.Errorf("%w: toy", ErrNotFound)

	// ErrInvalidFeeding is returned when a submitted feeding fails validation
	ErrInvalidFeeding = fmt.Errorf("%w: feeding", ErrInvalidInput)

	// ErrInvalidFilename is returned when a photo filename has no usable extension
	ErrInvalidFilename = fmt.Errorf("%w: photo filename has no usable extension", ErrInvalidInput)

	// ErrNoPhotoFile is returned when a photo submission carries no file
	ErrNoPhotoFile = fmt.Errorf("%w: no photo file", ErrInvalidInput)
)
