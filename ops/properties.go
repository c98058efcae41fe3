package ops

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/evan-idocoding/dynconf/store"
)

type opsConfig struct {
	format Format
	writes bool

	guards []func(name string) bool
	guard  func(name string) bool
}

// Option configures the property handlers.
type Option func(*opsConfig)

// WithDefaultFormat sets the default response format. It can be
// overridden per request by URL query (?format=json|text). Default is
// FormatText.
func WithDefaultFormat(f Format) Option {
	return func(c *opsConfig) { c.format = f }
}

// WithWrites enables the set/unset endpoints. Writes are off by default.
func WithWrites() Option {
	return func(c *opsConfig) { c.writes = true }
}

// WithKeyGuard appends a name guard. All guards are combined with AND:
// a property is visible/writable only if all guards allow its name.
func WithKeyGuard(fn func(name string) bool) Option {
	return func(c *opsConfig) {
		if fn != nil {
			c.guards = append(c.guards, fn)
		}
	}
}

// WithAllowPrefixes restricts properties to the provided name prefixes.
//
// Safety note: if no non-empty prefix is provided, this option denies
// all names.
func WithAllowPrefixes(prefixes ...string) Option {
	var ps []string
	for _, p := range prefixes {
		if p != "" {
			ps = append(ps, p)
		}
	}
	return WithKeyGuard(func(name string) bool {
		for _, p := range ps {
			if strings.HasPrefix(name, p) {
				return true
			}
		}
		return false
	})
}

func applyOptions(opts []Option) opsConfig {
	cfg := opsConfig{format: FormatText}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.format != FormatText && cfg.format != FormatJSON {
		cfg.format = FormatText
	}
	if len(cfg.guards) > 0 {
		guards := cfg.guards
		cfg.guard = func(name string) bool {
			for _, g := range guards {
				if !g(name) {
					return false
				}
			}
			return true
		}
	}
	return cfg
}

// Item is a point-in-time view of a single property handle.
type Item struct {
	Name string `json:"name"`

	// Value is nil when the handle currently holds no value.
	Value *string `json:"value,omitempty"`

	// ChangedAt is nil until the first change.
	ChangedAt *time.Time `json:"changed_at,omitempty"`

	// Callbacks is the number of registered change callbacks.
	Callbacks int `json:"callbacks"`
}

func snapshotItem(h *store.Handle) Item {
	it := Item{Name: h.Name(), Callbacks: h.CallbackCount()}
	if v, ok := h.Lookup(); ok {
		it.Value = &v
	}
	if ts := h.ChangedAt(); !ts.IsZero() {
		it.ChangedAt = &ts
	}
	return it
}

type listResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
	Items []Item `json:"items,omitempty"`
}

type itemResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
	Item  *Item  `json:"item,omitempty"`
}

type writeResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
	Old   *Item  `json:"old,omitempty"`
	New   *Item  `json:"new,omitempty"`
}

// Routes returns the property endpoints mounted on a chi router:
//
//	GET    /properties          sorted snapshot of all handles
//	GET    /properties/{name}   one handle
//	POST   /properties/{name}   set from string (?value=..., writes only)
//	DELETE /properties/{name}   unset (writes only)
//
// Write endpoints exist only when WithWrites is given.
func Routes(st *store.Store, opts ...Option) chi.Router {
	if st == nil {
		panic("ops: nil store.Store")
	}
	cfg := applyOptions(opts)

	r := chi.NewRouter()
	r.Get("/properties", listHandler(st, cfg))
	r.Get("/properties/{name}", getHandler(st, cfg))
	if cfg.writes {
		r.Post("/properties/{name}", setHandler(st, cfg))
		r.Delete("/properties/{name}", unsetHandler(st, cfg))
	}
	return r
}

func listHandler(st *store.Store, cfg opsConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format := formatFromRequest(r, cfg.format)
		var items []Item
		for _, name := range st.Names() {
			if cfg.guard != nil && !cfg.guard(name) {
				continue
			}
			items = append(items, snapshotItem(st.Handle(name)))
		}
		if format == FormatJSON {
			writeJSON(w, http.StatusOK, listResponse{OK: true, Items: items})
			return
		}
		var b strings.Builder
		for _, it := range items {
			appendItemLine(&b, it)
		}
		writeText(w, http.StatusOK, b.String())
	}
}

func getHandler(st *store.Store, cfg opsConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format := formatFromRequest(r, cfg.format)
		name := chi.URLParam(r, "name")
		if name == "" {
			writeItemError(w, format, http.StatusBadRequest, "missing name")
			return
		}
		if cfg.guard != nil && !cfg.guard(name) {
			writeItemError(w, format, http.StatusForbidden, "name not allowed")
			return
		}
		h, ok := st.Lookup(name)
		if !ok {
			writeItemError(w, format, http.StatusNotFound, "property not found")
			return
		}
		it := snapshotItem(h)
		if format == FormatJSON {
			writeJSON(w, http.StatusOK, itemResponse{OK: true, Item: &it})
			return
		}
		var b strings.Builder
		appendItemLine(&b, it)
		writeText(w, http.StatusOK, b.String())
	}
}

func setHandler(st *store.Store, cfg opsConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format := formatFromRequest(r, cfg.format)
		name := chi.URLParam(r, "name")
		if name == "" {
			writeWriteError(w, format, http.StatusBadRequest, "missing name")
			return
		}
		if cfg.guard != nil && !cfg.guard(name) {
			writeWriteError(w, format, http.StatusForbidden, "name not allowed")
			return
		}
		value, ok := getQueryRaw(r, "value")
		if !ok {
			writeWriteError(w, format, http.StatusBadRequest, "missing value")
			return
		}

		var old *Item
		if h, ok := st.Lookup(name); ok {
			it := snapshotItem(h)
			old = &it
		}
		st.Set(name, value)
		now := snapshotItem(st.Handle(name))

		if format == FormatJSON {
			writeJSON(w, http.StatusOK, writeResponse{OK: true, Old: old, New: &now})
			return
		}
		var b strings.Builder
		appendItemLine(&b, now)
		writeText(w, http.StatusOK, b.String())
	}
}

func unsetHandler(st *store.Store, cfg opsConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format := formatFromRequest(r, cfg.format)
		name := chi.URLParam(r, "name")
		if name == "" {
			writeWriteError(w, format, http.StatusBadRequest, "missing name")
			return
		}
		if cfg.guard != nil && !cfg.guard(name) {
			writeWriteError(w, format, http.StatusForbidden, "name not allowed")
			return
		}

		h, ok := st.Lookup(name)
		if !ok {
			writeWriteError(w, format, http.StatusNotFound, "property not found")
			return
		}
		old := snapshotItem(h)
		st.Unset(name)
		now := snapshotItem(h)

		if format == FormatJSON {
			writeJSON(w, http.StatusOK, writeResponse{OK: true, Old: &old, New: &now})
			return
		}
		var b strings.Builder
		appendItemLine(&b, now)
		writeText(w, http.StatusOK, b.String())
	}
}

func writeItemError(w http.ResponseWriter, format Format, status int, msg string) {
	if format == FormatJSON {
		writeJSON(w, status, itemResponse{OK: false, Error: msg})
		return
	}
	writeText(w, status, msg+"\n")
}

func writeWriteError(w http.ResponseWriter, format Format, status int, msg string) {
	if format == FormatJSON {
		writeJSON(w, status, writeResponse{OK: false, Error: msg})
		return
	}
	writeText(w, status, msg+"\n")
}

// appendItemLine renders one stable, greppable line per property.
func appendItemLine(b *strings.Builder, it Item) {
	b.WriteString(it.Name)
	b.WriteString("=")
	if it.Value != nil {
		b.WriteString(*it.Value)
	} else {
		b.WriteString("<unset>")
	}
	fmt.Fprintf(b, " callbacks=%d", it.Callbacks)
	if it.ChangedAt != nil {
		fmt.Fprintf(b, " changed_at=%s", it.ChangedAt.Format(time.RFC3339))
	}
	b.WriteString("\n")
}
