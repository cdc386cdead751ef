/*
Package maybe implements an optional value: Just(x) or Nothing. Package
match returns Maybe values from applying an open matcher, where no case
matching is an ordinary outcome rather than an error.

Clients either provide a default,

	result := m.Apply(input).WithDefault("unknown")

or branch on the two constructors:

	var v string
	switch mm := m.Apply(input).Match(); mm {
	case mm.Just(&v):
		// use v
	case mm.Nothing():
		// no case matched
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	IsJust() bool
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a value. Note that Just of a zero value is present all the
// same; presence is tracked by a tag, not by the value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns the absent value.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// Match returns a Matcher for branching on Just/Nothing in a switch.
func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// WithDefault returns the wrapped value, or def for Nothing.
func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to the wrapped value; Nothing is passed through and f is
// not called.
func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// IsJust reports whether m wraps a value.
func (m maybe[T]) IsJust() bool {
	return m.tag
}

// AndThen chains a Maybe into a function which itself may come up empty.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// Map applies f to the value wrapped by x, possibly changing the value's
// type. Nothing maps to Nothing without calling f.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Just(f(v))
	case m.Nothing():
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher supports branching on the constructors of a Maybe:
//
//	switch m := x.Match(); m {
//	case m.Just(&v):  …  // v receives the wrapped value
//	case m.Nothing(): …
//	}
//
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
