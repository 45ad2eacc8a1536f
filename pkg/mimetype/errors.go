package mimetype

import "errors"

var (
	// ErrNoExtensionForMIMEType is returned when a media type has no
	// registered extension to derive a filename from.
	ErrNoExtensionForMIMEType = errors.New("no extension registered for MIME type")
)
