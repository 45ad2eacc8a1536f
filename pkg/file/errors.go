package file

import "errors"

var (
	// Input validation errors
	ErrFileNotFound  = errors.New("file not found")
	ErrIsDirectory   = errors.New("path is a directory")
	ErrNilFileHeader = errors.New("file header is nil")
	ErrEmptyFilename = errors.New("filename is empty")

	// Materialization errors
	ErrNotMaterializable = errors.New("descriptor holds no bytes to materialize")

	// I/O operation errors - wrapped with context for debugging
	ErrFailedToOpenFile  = errors.New("failed to open file")
	ErrFailedToReadFile  = errors.New("failed to read file")
	ErrFailedToWriteFile = errors.New("failed to write file")
	ErrFailedToStatPath  = errors.New("failed to stat path")

	// Entropy source errors
	ErrRandomSource = errors.New("failed to read random bytes")
)
