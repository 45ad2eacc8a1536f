package file

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Header is a single HTTP response header pair. Order matters to callers
// that replay headers downstream, so descriptors keep a slice instead of
// a map.
type Header struct {
	Name  string
	Value string
}

// File is the canonical descriptor produced by every input origin:
// a local path, an in-memory payload, a multipart upload, or a remote
// URL (see pkg/fetch). Exactly one of LocalPath or Binary is populated
// at construction time; a Binary-only descriptor can be turned into a
// LocalPath one with Materialize.
//
// A File is immutable once constructed. Materialize does not mutate the
// receiver; it returns a new descriptor.
type File struct {
	// LocalPath is the absolute path to the materialized bytes, empty
	// for descriptors that only carry an in-memory payload.
	LocalPath string
	// Filename is the resolved display name, always present.
	Filename string
	// Binary holds the payload for descriptors not yet written to disk.
	Binary []byte
	// Headers carries the HTTP response headers for remote-origin
	// descriptors, in wire order. Empty for every other origin.
	Headers []Header
	// MIMEType is the resolved content type, when known.
	MIMEType string
	// Extension is the resolved extension without the leading dot, when
	// known.
	Extension string
}

// FromPath builds a descriptor for a file that already exists on local
// storage. The path is resolved to an absolute path and must point at a
// regular file.
func FromPath(path string) (*File, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	name := SanitizeFilename(filepath.Base(absPath))
	return &File{
		LocalPath: absPath,
		Filename:  name,
		Extension: Ext(name),
	}, nil
}

// FromBinary builds a descriptor around an in-memory payload. The bytes
// are not written anywhere until Materialize is called.
func FromBinary(filename string, data []byte) (*File, error) {
	if filename == "" {
		return nil, ErrEmptyFilename
	}

	name := SanitizeFilename(filename)
	return &File{
		Filename:  name,
		Binary:    data,
		Extension: Ext(name),
	}, nil
}

// FromUpload builds a Binary descriptor from a multipart upload,
// detecting the MIME type from the payload's leading bytes rather than
// trusting the client-supplied header.
func FromUpload(fh *multipart.FileHeader) (*File, error) {
	if fh == nil {
		return nil, ErrNilFileHeader
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = src.Close() }()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}

	name := SanitizeFilename(fh.Filename)
	return &File{
		Filename:  name,
		Binary:    data,
		MIMEType:  http.DetectContentType(data),
		Extension: Ext(name),
	}, nil
}

// Materialize writes a Binary descriptor's payload to a fresh temporary
// path and returns a new descriptor pointing at it. Ownership of the
// temporary file transfers to the caller; neither this package nor the
// descriptor ever deletes it. Descriptors that already have a LocalPath
// are returned unchanged.
func (f *File) Materialize() (*File, error) {
	if f.LocalPath != "" {
		return f, nil
	}
	if f.Binary == nil {
		return nil, ErrNotMaterializable
	}

	path, err := TempPath(f.Extension)
	if err != nil {
		return nil, err
	}

	// 0600: temp files hold caller data and are private until the
	// storage backend ingests them.
	if err := os.WriteFile(path, f.Binary, 0600); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}

	return &File{
		LocalPath: path,
		Filename:  f.Filename,
		Headers:   f.Headers,
		MIMEType:  f.MIMEType,
		Extension: f.Extension,
	}, nil
}

// Ext returns the extension of a filename without the leading dot, or
// an empty string when the filename has none.
func Ext(filename string) string {
	return strings.TrimPrefix(filepath.Ext(filename), ".")
}

// SanitizeFilename removes any path components and dangerous characters
// from a filename to prevent path traversal attacks.
//
// Example:
//
//	safe := file.SanitizeFilename("../../../etc/passwd") // Returns "passwd"
//	safe = file.SanitizeFilename("C:\\Windows\\file.txt") // Returns "file.txt"
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}

	return filename
}
