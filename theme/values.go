package theme

import (
	"fmt"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"animseq/utilities"
)

// Sequence returns animation delays, empty when not configured.
func (t *Theme) Sequence() (utilities.Sequence, error) {
	node := t.lookup(PathSequence)
	if node == nil {
		return utilities.Sequence{}, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, invalid(PathSequence, node, "list of delays")
	}

	var (
		seq  = make(utilities.Sequence, 0, len(node.Content))
		errs error
	)
	for i, item := range node.Content {
		item = resolve(item)
		if !isScalar(item) {
			errs = multierr.Append(errs, invalid(fmt.Sprintf("%s[%d]", PathSequence, i), item, "scalar"))
			continue
		}
		seq = append(seq, item.Value)
	}
	if errs != nil {
		return nil, errs
	}
	return seq, nil
}

// Recognized option fields.
const (
	optionFillMode = "fillMode"
	optionEasing   = "easing"
	optionDuration = "duration"
)

// SequenceOptions returns options applied to every sequence utility. Absent
// or null fields stay unset, unknown fields are ignored.
func (t *Theme) SequenceOptions() (utilities.Options, error) {
	var opts utilities.Options

	node := t.lookup(PathSequenceOptions)
	if node == nil {
		return opts, nil
	}
	if node.Kind != yaml.MappingNode {
		return opts, invalid(PathSequenceOptions, node, "mapping")
	}

	var errs error
	entries(node, func(key, value *yaml.Node) {
		var dst **string
		switch key.Value {
		case optionFillMode:
			dst = &opts.FillMode
		case optionEasing:
			dst = &opts.Easing
		case optionDuration:
			dst = &opts.Duration
		default:
			return
		}
		if value == nil || value.Tag == "!!null" {
			*dst = nil
			return
		}
		if !isScalar(value) {
			errs = multierr.Append(errs, invalid(PathSequenceOptions+"."+key.Value, value, "scalar"))
			return
		}
		*dst = utilities.Opt(value.Value)
	})
	if errs != nil {
		return utilities.Options{}, errs
	}
	return opts, nil
}

// Durations returns duration scale stored under path (for example
// "transitionDuration"), empty when not configured.
func (t *Theme) Durations(path string) ([]utilities.Duration, error) {
	node := t.lookup(path)
	if node == nil {
		return []utilities.Duration{}, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, invalid(path, node, "mapping")
	}

	var (
		durations = make([]utilities.Duration, 0, len(node.Content)/2)
		errs      error
	)
	entries(node, func(key, value *yaml.Node) {
		if !isScalar(value) {
			errs = multierr.Append(errs, invalid(path+"."+key.Value, value, "scalar"))
			return
		}
		durations = append(durations, utilities.Duration{Key: key.Value, Value: value.Value})
	})
	if errs != nil {
		return nil, errs
	}
	return durations, nil
}

// Keyframes returns keyframe animations in configuration order. Definitions
// are converted to *css.Keyframes when they have the usual frame -> properties
// shape, otherwise left nil.
func (t *Theme) Keyframes() ([]utilities.Keyframe, error) {
	node := t.lookup(PathKeyframes)
	if node == nil {
		return []utilities.Keyframe{}, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, invalid(PathKeyframes, node, "mapping")
	}

	keyframes := make([]utilities.Keyframe, 0, len(node.Content)/2)
	entries(node, func(key, value *yaml.Node) {
		kf := utilities.Keyframe{Name: key.Value}
		if def := keyframesDefinition(key.Value, value); def != nil {
			kf.Definition = def
		}
		keyframes = append(keyframes, kf)
	})
	return keyframes, nil
}

// TailwindDurations is the framework default transitionDuration scale.
func TailwindDurations() []utilities.Duration {
	return []utilities.Duration{
		{Key: "DEFAULT", Value: "150ms"},
		{Key: "0", Value: "0s"},
		{Key: "75", Value: "75ms"},
		{Key: "100", Value: "100ms"},
		{Key: "150", Value: "150ms"},
		{Key: "200", Value: "200ms"},
		{Key: "300", Value: "300ms"},
		{Key: "500", Value: "500ms"},
		{Key: "700", Value: "700ms"},
		{Key: "1000", Value: "1000ms"},
	}
}

func isScalar(node *yaml.Node) bool {
	return node != nil && node.Kind == yaml.ScalarNode && node.Tag != "!!null"
}

func invalid(path string, node *yaml.Node, expected string) error {
	return fmt.Errorf("%w: %s (line %d): expected %s", ErrInvalidInput, path, node.Line, expected)
}
