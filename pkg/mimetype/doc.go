// Package mimetype provides a deterministic, process-wide mapping
// between media types and file extensions, plus the filename resolution
// rule used when naming downloaded files.
//
// The mapping is a static IANA-derived table compiled into the binary.
// It deliberately does not consult the host's mime.types database:
// "first extension for a type" must be stable across platforms because
// it ends up in user-visible filenames.
//
// ResolveName implements the naming rule: a filename's own registered
// extension wins over the reported content type; otherwise the type's
// preferred extension is appended to the name. Content bytes are never
// sniffed here.
package mimetype
