package mimetype

import (
	"mime"
	"strings"
)

// extensionsByType maps a canonical media type to its known extensions,
// most common first. The table is hard-coded rather than read from the
// host's mime.types so that FirstExtension is deterministic across
// platforms and deployments.
var extensionsByType = map[string][]string{
	// Images
	"image/jpeg":    {"jpg", "jpeg", "jpe"},
	"image/png":     {"png"},
	"image/gif":     {"gif"},
	"image/webp":    {"webp"},
	"image/svg+xml": {"svg"},
	"image/bmp":     {"bmp"},
	"image/tiff":    {"tiff", "tif"},
	"image/heic":    {"heic"},
	"image/heif":    {"heif"},
	"image/avif":    {"avif"},
	"image/x-icon":  {"ico"},

	// Video
	"video/mp4":        {"mp4", "m4v"},
	"video/mpeg":       {"mpeg", "mpg"},
	"video/ogg":        {"ogv"},
	"video/webm":       {"webm"},
	"video/quicktime":  {"mov"},
	"video/x-msvideo":  {"avi"},
	"video/x-flv":      {"flv"},
	"video/3gpp":       {"3gp"},
	"video/x-matroska": {"mkv"},

	// Audio
	"audio/mpeg":   {"mp3"},
	"audio/ogg":    {"ogg", "oga", "opus"},
	"audio/wav":    {"wav"},
	"audio/aac":    {"aac"},
	"audio/mp4":    {"m4a"},
	"audio/flac":   {"flac"},
	"audio/webm":   {"weba"},
	"audio/x-midi": {"mid", "midi"},

	// Documents
	"application/pdf":    {"pdf"},
	"application/msword": {"doc"},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {"docx"},
	"application/vnd.ms-excel": {"xls"},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {"xlsx"},
	"application/vnd.ms-powerpoint":                                     {"ppt"},
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": {"pptx"},
	"application/vnd.oasis.opendocument.text":        {"odt"},
	"application/vnd.oasis.opendocument.spreadsheet": {"ods"},
	"application/rtf": {"rtf"},

	// Text
	"text/plain":             {"txt", "text", "log"},
	"text/html":              {"html", "htm"},
	"text/css":               {"css"},
	"text/csv":               {"csv"},
	"text/markdown":          {"md", "markdown"},
	"text/calendar":          {"ics"},
	"text/xml":               {"xml"},
	"text/javascript":        {"js", "mjs"},
	"application/json":       {"json"},
	"application/xml":        {"xml"},
	"application/x-yaml":     {"yaml", "yml"},
	"application/javascript": {"js"},

	// Archives and binaries
	"application/zip":              {"zip"},
	"application/gzip":             {"gz"},
	"application/x-tar":            {"tar"},
	"application/x-7z-compressed":  {"7z"},
	"application/x-rar-compressed": {"rar"},
	"application/x-bzip2":          {"bz2"},
	"application/wasm":             {"wasm"},
	"application/octet-stream":     {"bin"},

	// Fonts
	"font/woff":  {"woff"},
	"font/woff2": {"woff2"},
	"font/ttf":   {"ttf"},
	"font/otf":   {"otf"},
}

// registeredExtensions is the reverse index, built once at init.
var registeredExtensions = func() map[string]bool {
	idx := make(map[string]bool)
	for _, exts := range extensionsByType {
		for _, ext := range exts {
			idx[ext] = true
		}
	}
	return idx
}()

// Registered reports whether ext (without the leading dot,
// case-insensitive) belongs to some known media type.
func Registered(ext string) bool {
	if ext == "" {
		return false
	}
	return registeredExtensions[strings.ToLower(strings.TrimPrefix(ext, "."))]
}

// FirstExtension returns the preferred extension for a media type,
// without the leading dot. Parameters such as "; charset=utf-8" are
// stripped before lookup. The second return value reports whether the
// type is known.
func FirstExtension(mimeType string) (string, bool) {
	exts, ok := extensionsByType[normalize(mimeType)]
	if !ok || len(exts) == 0 {
		return "", false
	}
	return exts[0], true
}

// normalize strips media type parameters and lowercases the result.
// Falls back to manual trimming when the value is not parseable.
func normalize(mimeType string) string {
	if mt, _, err := mime.ParseMediaType(mimeType); err == nil {
		return mt
	}
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}
