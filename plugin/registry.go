package plugin

import (
	"go.uber.org/zap"

	"animseq/css"
	"animseq/utilities"
)

// SheetRegistry collects registered utilities and renders them as a stylesheet.
type SheetRegistry struct {
	log *zap.Logger
	all *utilities.Utilities
}

func NewSheetRegistry(log *zap.Logger) *SheetRegistry {
	if log == nil {
		log = zap.NewNop()
	}
	return &SheetRegistry{log: log.Named("registry"), all: utilities.New(0)}
}

// AddUtilities registers utilities. Later registration of a known selector
// replaces earlier declaration.
func (r *SheetRegistry) AddUtilities(u *utilities.Utilities) {
	for sel := range u.All() {
		if _, exists := r.all.Get(sel); exists {
			r.log.Warn("Utility redefined, using latest declaration", zap.String("selector", sel))
		}
	}
	r.all.Merge(u)
	r.log.Debug("Utilities registered", zap.Int("count", u.Len()), zap.Int("total", r.all.Len()))
}

// Utilities returns everything registered so far.
func (r *SheetRegistry) Utilities() *utilities.Utilities {
	return r.all
}

// Stylesheet renders registered utilities as CSS rules in registration order.
func (r *SheetRegistry) Stylesheet() *css.Stylesheet {
	sheet := &css.Stylesheet{}
	for sel, d := range r.all.All() {
		sheet.AddRule(RuleFor(sel, d))
	}
	return sheet
}

// RuleFor converts utility into CSS rule.
func RuleFor(selector string, d utilities.Declaration) css.Rule {
	rule := css.Rule{Selector: selector, Declarations: make([]css.Declaration, 0, len(d))}
	for _, p := range d {
		rule.Declarations = append(rule.Declarations, css.Declaration{Property: p.Name, Value: p.Value})
	}
	return rule
}
