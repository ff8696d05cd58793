package css

import (
	"fmt"
	"io"
	"strings"
)

// Declaration is a single "property: value" pair.
type Declaration struct {
	Property string
	Value    string
}

// Rule represents a single CSS rule (selector + declarations). Declarations
// keep source order.
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// Get returns the value of the last declaration of the property.
func (r Rule) Get(property string) (string, bool) {
	for i := len(r.Declarations) - 1; i >= 0; i-- {
		if r.Declarations[i].Property == property {
			return r.Declarations[i].Value, true
		}
	}
	return "", false
}

// Frame is a keyframe selector ("from", "50%", "0%, 100%") with its declarations.
type Frame struct {
	Selector     string
	Declarations []Declaration
}

// Keyframes represents an @keyframes block.
type Keyframes struct {
	Name   string
	Frames []Frame
}

// StylesheetItem is a single top-level item in a stylesheet.
// Exactly one of Rule, Keyframes, or Comment is non-nil.
type StylesheetItem struct {
	Rule      *Rule
	Keyframes *Keyframes
	Comment   *string
}

// Stylesheet represents a CSS stylesheet as a list of top-level items in
// source order.
type Stylesheet struct {
	Items    []StylesheetItem
	Warnings []string // Warnings for skipped constructs
}

// AddRule appends a rule to the stylesheet.
func (s *Stylesheet) AddRule(r Rule) {
	s.Items = append(s.Items, StylesheetItem{Rule: &r})
}

// AddKeyframes appends an @keyframes block to the stylesheet.
func (s *Stylesheet) AddKeyframes(kf Keyframes) {
	s.Items = append(s.Items, StylesheetItem{Keyframes: &kf})
}

// AddComment appends a comment to the stylesheet.
func (s *Stylesheet) AddComment(text string) {
	s.Items = append(s.Items, StylesheetItem{Comment: &text})
}

// Rules returns all top-level rules in source order.
func (s *Stylesheet) Rules() []Rule {
	var rules []Rule
	for _, item := range s.Items {
		if item.Rule != nil {
			rules = append(rules, *item.Rule)
		}
	}
	return rules
}

// Keyframes returns all @keyframes blocks in source order.
func (s *Stylesheet) Keyframes() []Keyframes {
	var kfs []Keyframes
	for _, item := range s.Items {
		if item.Keyframes != nil {
			kfs = append(kfs, *item.Keyframes)
		}
	}
	return kfs
}

// RulesBySelector returns all top-level rules matching the given selector string.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, item := range s.Items {
		if item.Rule != nil && item.Rule.Selector == selector {
			matches = append(matches, *item.Rule)
		}
	}
	return matches
}

// RulesWithPrefix returns all top-level rules whose selector starts with prefix.
func (s *Stylesheet) RulesWithPrefix(prefix string) []Rule {
	var matches []Rule
	for _, item := range s.Items {
		if item.Rule != nil && strings.HasPrefix(item.Rule.Selector, prefix) {
			matches = append(matches, *item.Rule)
		}
	}
	return matches
}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
// Declarations with empty values are not written, "prop: ;" is not valid CSS.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, item := range s.Items {
		var n int
		var err error

		switch {
		case item.Comment != nil:
			n, err = fmt.Fprintf(w, "/* %s */\n", escapeComment(*item.Comment))
		case item.Keyframes != nil:
			n, err = writeKeyframes(w, item.Keyframes)
		case item.Rule != nil:
			n, err = writeBlock(w, "", item.Rule.Selector, item.Rule.Declarations)
		}

		total += int64(n)
		if err != nil {
			return total, err
		}

		// Add blank line between items (except after last)
		if i < len(s.Items)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// writeBlock writes selector and its declarations to w using indent for
// the selector line.
func writeBlock(w io.Writer, indent, selector string, decls []Declaration) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s%s {\n", indent, selector)
	total += n
	if err != nil {
		return total, err
	}
	for _, d := range decls {
		if d.Value == "" {
			continue
		}
		n, err = fmt.Fprintf(w, "%s  %s: %s;\n", indent, d.Property, d.Value)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprintf(w, "%s}\n", indent)
	total += n
	return total, err
}

// writeKeyframes writes an @keyframes block to w.
func writeKeyframes(w io.Writer, kf *Keyframes) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "@keyframes %s {\n", kf.Name)
	total += n
	if err != nil {
		return total, err
	}
	for _, f := range kf.Frames {
		n, err = writeBlock(w, "  ", f.Selector, f.Declarations)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}

// escapeComment makes sure text cannot terminate the comment early.
func escapeComment(text string) string {
	return strings.ReplaceAll(text, "*/", "* /")
}
