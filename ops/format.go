package ops

import (
	"encoding/json"
	"net/http"
)

// Format selects the response rendering of the ops handlers.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// formatFromRequest resolves the effective format: the URL query
// (?format=json|text) overrides the configured default.
func formatFromRequest(r *http.Request, def Format) Format {
	if r == nil || r.URL == nil {
		return def
	}
	switch r.URL.Query().Get("format") {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return def
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func getQueryRaw(r *http.Request, name string) (string, bool) {
	// Allows empty string values, unlike Query().Get.
	if r == nil || r.URL == nil {
		return "", false
	}
	vs, ok := r.URL.Query()[name]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}
