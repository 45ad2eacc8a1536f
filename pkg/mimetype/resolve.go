package mimetype

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ResolveName decides the final filename and extension for a file given
// a candidate filename and its content type.
//
// When the filename already ends in a registered extension, both are
// kept as-is: the filename is trusted over the content type, so
// "photo.jpg" stays "photo.jpg" even when the server reports image/png.
// Otherwise the preferred extension for mimeType is appended to the
// full filename - an unregistered extension is preserved as part of the
// name ("photo.xyz" + image/png -> "photo.xyz.png"), never stripped.
//
// A mimeType with no registered extension is a fatal input error; there
// is no fallback extension.
func ResolveName(filename, mimeType string) (name, ext string, err error) {
	ext = strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext != "" && Registered(ext) {
		return filename, ext, nil
	}

	derived, ok := FirstExtension(mimeType)
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrNoExtensionForMIMEType, mimeType)
	}

	return filename + "." + derived, derived, nil
}
