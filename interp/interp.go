// Package interp drives values that implement vectorn.Arithmetic from one state
// to another over time.
package interp

import (
	"context"
	"time"

	"animvec/vectorn"
)

const (
	// DefaultThreshold is the squared distance under which two values are
	// considered equal.
	DefaultThreshold = 1e-6

	// DefaultFPS is the sampling rate used by Frames when none is given.
	DefaultFPS = 60
)

// Animatable constrains P to be a pointer to T with T's arithmetic.
type Animatable[T any] interface {
	*T
	vectorn.Arithmetic[T]
}

// Lerp returns from + (to - from) * t.
func Lerp[T any, P Animatable[T]](from, to T, t float64) T {
	delta := P(&to).Subtract(from)
	P(&delta).Scale(t)
	return P(&from).Add(delta)
}

// Converged reports whether the squared distance between current and target is
// within threshold. NaN distances never converge.
func Converged[T any, P Animatable[T]](current, target T, threshold float64) bool {
	diff := P(&current).Subtract(target)
	return P(&diff).MagnitudeSquared() <= threshold
}

// Curve maps linear progress in [0, 1] to eased progress.
type Curve func(progress float64) float64

// Linear is the identity curve.
func Linear(progress float64) float64 {
	return progress
}

// EaseInOut is a smoothstep curve: slow at both ends.
func EaseInOut(progress float64) float64 {
	return progress * progress * (3 - 2*progress)
}

// Frame is one sample of a running animation.
type Frame[T any] struct {
	Index   int
	Elapsed time.Duration
	Value   T
}

// Animation moves a value from From to To over Duration.
type Animation[T any, P Animatable[T]] struct {
	From     T
	To       T
	Duration time.Duration

	// Curve defaults to Linear.
	Curve Curve

	// Threshold is the squared distance to To under which the animation
	// settles before Duration. Zero settles only on an exact match.
	Threshold float64
}

// Progress returns elapsed/Duration clamped to [0, 1].
func (a *Animation[T, P]) Progress(elapsed time.Duration) float64 {
	if a.Duration <= 0 {
		return 1
	}
	p := float64(elapsed) / float64(a.Duration)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Value returns the animated value at elapsed.
func (a *Animation[T, P]) Value(elapsed time.Duration) T {
	curve := a.Curve
	if curve == nil {
		curve = Linear
	}
	return Lerp[T, P](a.From, a.To, curve(a.Progress(elapsed)))
}

// Done reports whether the animation has run its course at elapsed, either by
// time or because the value is already close enough to To.
func (a *Animation[T, P]) Done(elapsed time.Duration) bool {
	return a.done(a.Value(elapsed), elapsed)
}

// done is Done for a value already sampled at elapsed.
func (a *Animation[T, P]) done(value T, elapsed time.Duration) bool {
	if a.Progress(elapsed) >= 1 {
		return true
	}
	return Converged[T, P](value, a.To, a.Threshold)
}

// Frames samples the animation fps times per second, capped at one frame per
// nanosecond. Frame times are derived from the frame index, so a slow consumer
// sees every step. The channel is closed after the final frame or when ctx is
// cancelled.
func (a *Animation[T, P]) Frames(ctx context.Context, fps int) <-chan Frame[T] {
	if fps <= 0 {
		fps = DefaultFPS
	}
	interval := max(time.Second/time.Duration(fps), time.Nanosecond)
	out := make(chan Frame[T])

	go func() {
		defer close(out)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for i := 0; ; i++ {
			elapsed := time.Duration(i) * interval
			frame := Frame[T]{Index: i, Elapsed: elapsed, Value: a.Value(elapsed)}
			select {
			case out <- frame:
			case <-ctx.Done():
				return
			}
			if a.done(frame.Value, elapsed) {
				return
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
