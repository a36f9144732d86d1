// Package chflow holds the channel helpers shared by the polling, coordination
// and refresh loops. Blocking helpers give up as soon as their context is done.
package chflow

import "context"

// Receive blocks until a value arrives on ch or ctx is done. The boolean is
// false when ctx ended first or ch was closed; the value is then zero.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	select {
	case <-ctx.Done():
		var zero T
		return zero, false
	case v, ok := <-ch:
		return v, ok
	}
}

// Send blocks until v is accepted by ch or ctx is done, and reports whether v
// was delivered.
func Send[T any](ctx context.Context, ch chan<- T, v T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- v:
		return true
	}
}

// Offer hands v to ch only if it can be accepted right away. With a buffer of
// one it coalesces repeated requests into a single pending one.
func Offer[T any](ch chan<- T, v T) bool {
	select {
	case ch <- v:
		return true
	default:
		return false
	}
}
