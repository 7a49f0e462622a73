package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPage   = "page"
	KeyPath   = "path"
	KeyBucket = "bucket"
	KeyUID    = "uid"
	KeyCount  = "count"
	KeyBytes  = "bytes"
	KeyStage  = "stage"
	KeyError  = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Page(name string) slog.Attr   { return slog.String(KeyPage, name) }
func Path(p string) slog.Attr      { return slog.String(KeyPath, p) }
func Bucket(name string) slog.Attr { return slog.String(KeyBucket, name) }
func UID(uid string) slog.Attr     { return slog.String(KeyUID, uid) }
func Count(n int) slog.Attr        { return slog.Int(KeyCount, n) }
func Bytes(n int) slog.Attr        { return slog.Int(KeyBytes, n) }
func Stage(name string) slog.Attr  { return slog.String(KeyStage, name) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
