package theme

import (
	"strings"
	"unicode"

	yaml "gopkg.in/yaml.v3"

	"animseq/css"
)

// keyframesDefinition converts framework keyframes definition
//
//	"0%":   { transform: "translateY(24px)", opacity: 0 }
//	"100%": { transform: "translateY(0)", opacity: 1 }
//
// into @keyframes block. Returns nil for anything of different shape.
func keyframesDefinition(name string, node *yaml.Node) *css.Keyframes {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	kf := &css.Keyframes{Name: name}
	ok := true
	entries(node, func(sel, props *yaml.Node) {
		if !ok {
			return
		}
		if props == nil || props.Kind != yaml.MappingNode {
			ok = false
			return
		}
		frame := css.Frame{Selector: sel.Value}
		entries(props, func(prop, value *yaml.Node) {
			if !isScalar(value) {
				ok = false
				return
			}
			frame.Declarations = append(frame.Declarations, css.Declaration{
				Property: kebabCase(prop.Value),
				Value:    value.Value,
			})
		})
		kf.Frames = append(kf.Frames, frame)
	})
	if !ok {
		return nil
	}
	return kf
}

// kebabCase turns camelCase property names (animationTimingFunction) into CSS
// form. Custom properties and names which are already lower case are kept.
func kebabCase(s string) string {
	if strings.HasPrefix(s, "--") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 4)
	for _, r := range s {
		if unicode.IsUpper(r) {
			sb.WriteByte('-')
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
