package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// URL records the fetched URL under the key "url".
func URL(u string) slog.Attr {
	return slog.String("url", u)
}

// Attempt records the 1-based attempt number under the key "attempt".
func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}

// Duration records an operation duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Filename records a resolved filename under the key "filename".
func Filename(name string) slog.Attr {
	return slog.String("filename", name)
}

// MIMEType records a resolved content type under the key "mime_type".
func MIMEType(mt string) slog.Attr {
	return slog.String("mime_type", mt)
}

// Key records a storage object key under the key "key".
func Key(k string) slog.Attr {
	return slog.String("key", k)
}
