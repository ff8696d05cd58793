package utilities

import "strconv"

const (
	sequencePrefix = ".animate-"
	durationPrefix = ".animation-duration-"
)

// SequenceSelector returns class selector for keyframe name at 0-based
// sequence position idx.
func SequenceSelector(name string, idx int) string {
	if idx == 0 {
		return sequencePrefix + name
	}
	return sequencePrefix + name + "-" + strconv.Itoa(idx+1)
}

// DurationSelector returns class selector for duration key.
func DurationSelector(key string) string {
	return durationPrefix + key
}

// SequenceUtilities produces one utility for every keyframe and every step of
// the sequence: keyframes in their order, steps in sequence order. Result
// holds len(keyframes)*len(seq) utilities unless names are ambiguous (for
// example "fade" step 2 and keyframe "fade-2"), in which case the later one
// wins.
func SequenceUtilities(keyframes []Keyframe, opts Options, seq Sequence) *Utilities {
	u := New(len(keyframes) * len(seq))
	if len(seq) == 0 {
		return u
	}

	fillMode, easing, duration := opts.fillMode(), opts.easing(), opts.duration()
	for _, kf := range keyframes {
		for i, delay := range seq {
			u.Set(SequenceSelector(kf.Name, i), Declaration{
				{Name: PropAnimationName, Value: kf.Name},
				{Name: PropAnimationFillMode, Value: fillMode},
				{Name: PropAnimationDelay, Value: delay},
				{Name: PropAnimationTimingFunction, Value: easing},
				{Name: PropAnimationDuration, Value: duration},
			})
		}
	}
	return u
}

// DurationUtilities produces animation-duration utility for every entry of
// the duration scale in its order.
func DurationUtilities(durations []Duration) *Utilities {
	u := New(len(durations))
	for _, d := range durations {
		u.Set(DurationSelector(d.Key), Declaration{
			{Name: PropAnimationDuration, Value: d.Value},
		})
	}
	return u
}
