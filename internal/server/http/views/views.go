package views

import (
	"embed"
	"html/template"
	"strings"
	"time"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses all page templates with the helper functions they use.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(files, "templates/*.html")
}

// Funcs returns the template helper functions.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"humanize": humanize,
		"lastSeen": lastSeen,
		"deref":    deref,
	}
}

// humanize turns feature names like Annual_Income into "Annual Income".
func humanize(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}

func lastSeen(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.UTC().Format("2006-01-02 15:04 UTC")
}

// deref renders nullable metrics, leaving gaps empty.
func deref(v any) any {
	switch p := v.(type) {
	case *float64:
		if p == nil {
			return ""
		}
		return *p
	case *int64:
		if p == nil {
			return ""
		}
		return *p
	default:
		return v
	}
}
