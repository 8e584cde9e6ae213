package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyDirectory  = "directory"
	KeyFile       = "file"
	KeyImage      = "image"
	KeyWidth      = "width"
	KeyHeight     = "height"
	KeyQuality    = "quality"
	KeyRatio      = "ratio"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyCount      = "count"
	KeyBuildID    = "build_id"
	KeyURL        = "url"
	KeyName       = "name"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Directory(d string) slog.Attr    { return slog.String(KeyDirectory, d) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Image(key string) slog.Attr      { return slog.String(KeyImage, key) }
func Width(w int) slog.Attr           { return slog.Int(KeyWidth, w) }
func Height(h int) slog.Attr          { return slog.Int(KeyHeight, h) }
func Quality(q float32) slog.Attr     { return slog.Float64(KeyQuality, float64(q)) }
func Ratio(r string) slog.Attr        { return slog.String(KeyRatio, r) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func URL(u string) slog.Attr          { return slog.String(KeyURL, u) }
func Name(n string) slog.Attr         { return slog.String(KeyName, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
