// Package plugin wires animation utility generators to a theme and to the
// registry which collects utilities for the final stylesheet.
package plugin

import (
	"slices"

	"github.com/maruel/natural"
	"go.uber.org/multierr"

	"animseq/theme"
	"animseq/utilities"
)

// Theme is the part of theme configuration the plugin reads.
type Theme interface {
	Keyframes() ([]utilities.Keyframe, error)
	Sequence() (utilities.Sequence, error)
	SequenceOptions() (utilities.Options, error)
	Durations(path string) ([]utilities.Duration, error)
}

// Registry accepts generated utilities.
type Registry interface {
	AddUtilities(u *utilities.Utilities)
}

// Settings tune how theme values are read.
type Settings struct {
	// DurationsPath is the theme path of the duration scale, transitionDuration
	// when empty.
	DurationsPath string
	// FallbackDurations are used when theme has no duration scale.
	FallbackDurations []utilities.Duration
	// NaturalOrder sorts duration scale by key in natural order ("75" before
	// "100") instead of keeping configuration order.
	NaturalOrder bool
	// Keyframes are appended to theme keyframes unless theme already has
	// keyframe with the same name.
	Keyframes []utilities.Keyframe
}

// Result describes what has been registered.
type Result struct {
	Keyframes []utilities.Keyframe
	Sequence  *utilities.Utilities
	Durations *utilities.Utilities
}

// Apply reads keyframes, sequence, options and duration scale from theme,
// generates both utility families and registers them: sequence utilities
// first, then duration utilities. Problems with theme values are reported
// together and nothing is registered in that case.
func Apply(th Theme, reg Registry, settings Settings) (*Result, error) {
	options, errOpts := th.SequenceOptions()
	sequence, errSeq := th.Sequence()
	keyframes, errKf := th.Keyframes()

	path := settings.DurationsPath
	if path == "" {
		path = theme.PathTransitionDuration
	}
	durations, errDur := th.Durations(path)

	if err := multierr.Combine(errOpts, errSeq, errKf, errDur); err != nil {
		return nil, err
	}

	if len(durations) == 0 {
		durations = settings.FallbackDurations
	}
	if settings.NaturalOrder {
		durations = slices.Clone(durations)
		slices.SortStableFunc(durations, func(a, b utilities.Duration) int {
			switch {
			case natural.Less(a.Key, b.Key):
				return -1
			case natural.Less(b.Key, a.Key):
				return 1
			}
			return 0
		})
	}
	keyframes = appendKeyframes(keyframes, settings.Keyframes)

	res := &Result{
		Keyframes: keyframes,
		Sequence:  utilities.SequenceUtilities(keyframes, options, sequence),
		Durations: utilities.DurationUtilities(durations),
	}
	reg.AddUtilities(res.Sequence)
	reg.AddUtilities(res.Durations)
	return res, nil
}

// appendKeyframes returns base extended with keyframes from extra whose names
// are not yet known.
func appendKeyframes(base, extra []utilities.Keyframe) []utilities.Keyframe {
	if len(extra) == 0 {
		return base
	}
	known := make(map[string]struct{}, len(base))
	for _, kf := range base {
		known[kf.Name] = struct{}{}
	}
	out := append([]utilities.Keyframe(nil), base...)
	for _, kf := range extra {
		if _, ok := known[kf.Name]; ok {
			continue
		}
		known[kf.Name] = struct{}{}
		out = append(out, kf)
	}
	return out
}
