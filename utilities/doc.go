// Package utilities generates animation utility classes.
//
// Two families are produced from plain data: sequence utilities, which
// stagger one keyframe animation across an ordered list of delays, and
// duration utilities, which expose a duration scale as animation-duration
// classes. Generation is pure: inputs are never modified and every call
// returns a freshly allocated set, so generators may be called concurrently.
//
// Class naming is fixed:
//
//	.animate-{keyframe}           first step of the sequence
//	.animate-{keyframe}-{n}       n-th step, n starting at 2
//	.animation-duration-{key}     every duration entry
package utilities
