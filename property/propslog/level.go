// Package propslog binds a dynamic property to a slog.LevelVar, so the
// process log level follows the configuration store.
//
//	lv := propslog.LevelVar(nil, "log.level", slog.LevelInfo)
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lv}))
//
// Updating the property ("debug", "info", "warn", "error") re-levels the
// logger at runtime; an unset or unrecognized value falls back to the
// default level.
package propslog

import (
	"log/slog"
	"strings"

	"github.com/evan-idocoding/dynconf/property"
	"github.com/evan-idocoding/dynconf/store"
)

// levelProperty is a reactive string property: every change re-syncs the
// bound LevelVar. It must NOT be added to the callback-avoidance registry.
type levelProperty struct {
	property.String
	lv  *slog.LevelVar
	def slog.Level
}

func (p *levelProperty) PropertyChanged() { p.sync() }

func (p *levelProperty) sync() {
	p.lv.Set(parseLevel(p.Get(), p.def))
}

// LevelVar binds the named property in st to a new slog.LevelVar and
// returns it. A nil st means store.Default().
//
// Accepted values are case-insensitive: debug / info / warn / error, plus
// the common aliases warning and err.
func LevelVar(st *store.Store, name string, defaultLevel slog.Level) *slog.LevelVar {
	lv := new(slog.LevelVar)
	p := &levelProperty{lv: lv, def: defaultLevel}
	property.InitString(&p.String, st, name, levelToString(defaultLevel), p)
	p.sync()
	return lv
}

func parseLevel(s string, def slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return def
	}
}

func levelToString(l slog.Level) string {
	// slog: Debug=-4, Info=0, Warn=4, Error=8
	switch {
	case l < slog.LevelInfo:
		return "debug"
	case l < slog.LevelWarn:
		return "info"
	case l < slog.LevelError:
		return "warn"
	default:
		return "error"
	}
}
