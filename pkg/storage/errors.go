package storage

import "errors"

var (
	// Configuration errors
	ErrInvalidConfig      = errors.New("invalid storage configuration")
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")

	// Input errors
	ErrNilDescriptor  = errors.New("file descriptor is nil")
	ErrNoBytes        = errors.New("file descriptor carries no bytes")
	ErrInvalidPath    = errors.New("invalid path") // Prevents path traversal attacks
	ErrObjectNotFound = errors.New("object not found")

	// Local I/O errors - wrapped with context for debugging
	ErrFailedToCreateDirectory = errors.New("failed to create directory")
	ErrFailedToOpenFile        = errors.New("failed to open file")
	ErrFailedToReadFile        = errors.New("failed to read file")
	ErrFailedToWriteFile       = errors.New("failed to write file")
	ErrFailedToDeleteFile      = errors.New("failed to delete file")
	ErrFailedToStatPath        = errors.New("failed to stat path")
	ErrFailedToGetAbsolutePath = errors.New("failed to get absolute path")

	// S3-specific errors for proper error classification
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrRequestTimeout     = errors.New("request timed out")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")

	// Context and cancellation errors
	ErrOperationTimeout  = errors.New("operation timed out")
	ErrOperationCanceled = errors.New("operation canceled")
)
