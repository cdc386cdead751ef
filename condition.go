package match

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	ac "github.com/petar-dambovaliev/aho-corasick"
)

// Condition is a capability to test an input and narrow or extract a
// derived value from it. Conditions are created once, are immutable, and
// may be evaluated concurrently: any state a condition needs (a compiled
// regular expression, a string automaton) is set up at construction time
// and read-only thereafter; state arising during evaluation is confined to
// the Evaluate call and returned as part of its outcome.
//
// O is the narrowed/extracted type. It equals I for conditions that simply
// test (Predicate, Eq, Any, Satisfies); it is a subtype for Is and a
// structural value for the regex and pair conditions.
type Condition[I, O any] interface {
	Evaluate(input I) MaybeMatch[O]
}

// --- Type narrowing --------------------------------------------------------

// Is creates a condition that checks whether the input's dynamic type is
// assignable to T, and on match views the input as T. A nil input never
// matches, regardless of T. When the target types of several cases overlap,
// the first declared case wins.
func Is[I, T any]() Condition[I, T] {
	return typeCondition[I, T]{}
}

type typeCondition[I, T any] struct{}

func (c typeCondition[I, T]) Evaluate(input I) MaybeMatch[T] {
	boxed := any(input)
	if boxed == nil {
		return NoMatch[T]()
	}
	narrowed, ok := boxed.(T)
	return CreateMatch(ok, func() T { return narrowed })
}

func (c typeCondition[I, T]) String() string {
	var sample T
	return fmt.Sprintf("is(%T)", sample)
}

// --- Predicates ------------------------------------------------------------

// Predicate creates a condition that checks whether the input satisfies
// test. This condition does not narrow and returns the input as is.
func Predicate[I any](test func(I) bool) Condition[I, I] {
	return predicateCondition[I]{test: test, label: "predicate"}
}

type predicateCondition[I any] struct {
	test  func(I) bool
	label string
}

func (c predicateCondition[I]) Evaluate(input I) MaybeMatch[I] {
	return CreateMatch(c.test(input), func() I { return input })
}

func (c predicateCondition[I]) String() string {
	return c.label
}

// BoolMatcher is the surface of an external boolean matcher: an opaque
// source of yes/no decisions about inputs. Satisfies adapts one into a
// condition.
type BoolMatcher[I any] interface {
	Matches(input I) bool
}

// Satisfies creates a condition that checks whether the input satisfies the
// external matcher m. This condition does not narrow and returns the input
// as is.
func Satisfies[I any](m BoolMatcher[I]) Condition[I, I] {
	return predicateCondition[I]{
		test:  m.Matches,
		label: fmt.Sprintf("satisfies(%v)", m),
	}
}

// Eq creates a condition that checks whether the input is equal to value.
// This condition does not narrow and returns the input as is.
func Eq[I comparable](value I) Condition[I, I] {
	return predicateCondition[I]{
		test:  func(input I) bool { return input == value },
		label: fmt.Sprintf("eq(%v)", value),
	}
}

// DeepEq creates a condition that checks whether the input is structurally
// equal to value, using go-cmp with the given options. Use it where Eq
// cannot serve: slices, maps, or types with custom equality (cmp.Option).
func DeepEq[I any](value I, opts ...cmp.Option) Condition[I, I] {
	return predicateCondition[I]{
		test:  func(input I) bool { return cmp.Equal(input, value, opts...) },
		label: fmt.Sprintf("deepEq(%v)", value),
	}
}

// Any creates a condition that matches any input. Its main use is as a
// wildcard component in PairOf conditions.
func Any[I any]() Condition[I, I] {
	return predicateCondition[I]{
		test:  func(I) bool { return true },
		label: "any",
	}
}

// --- Componentwise pair matching -------------------------------------------

// PairOf creates a condition that matches a Pair by checking both
// components with the given sub-conditions. It matches iff both components
// match; the value is then a new Pair of the narrowed component values. If
// either component fails, the whole condition reports no match and a
// narrowed value of the other component is discarded.
func PairOf[A, B, A1, B1 any](first Condition[A, A1], second Condition[B, B1]) Condition[Pair[A, B], Pair[A1, B1]] {
	return pairCondition[A, B, A1, B1]{first: first, second: second}
}

type pairCondition[A, B, A1, B1 any] struct {
	first  Condition[A, A1]
	second Condition[B, B1]
}

func (c pairCondition[A, B, A1, B1]) Evaluate(input Pair[A, B]) MaybeMatch[Pair[A1, B1]] {
	left := c.first.Evaluate(input.Left)
	if !left.Matches() {
		return NoMatch[Pair[A1, B1]]()
	}
	right := c.second.Evaluate(input.Right)
	if !right.Matches() {
		return NoMatch[Pair[A1, B1]]()
	}
	return Matched(P(left.Value(), right.Value()))
}

func (c pairCondition[A, B, A1, B1]) String() string {
	return fmt.Sprintf("pair(%s, %s)", describe(c.first), describe(c.second))
}

// --- Literal sets ----------------------------------------------------------

// ContainsAny creates a condition that matches strings containing at least
// one of the given literals. The string automaton is compiled once at
// construction and shared by all evaluations. On match, the value is the
// leftmost-longest literal occurring in the input. With an empty literal
// set the condition never matches.
func ContainsAny(literals ...string) Condition[string, string] {
	builder := ac.NewAhoCorasickBuilder(ac.Opts{
		MatchKind: ac.LeftMostLongestMatch,
	})
	automaton := builder.Build(literals)
	return substringCondition{
		automaton: automaton,
		literals:  append([]string(nil), literals...),
	}
}

type substringCondition struct {
	automaton ac.AhoCorasick
	literals  []string
}

func (c substringCondition) Evaluate(input string) MaybeMatch[string] {
	if len(c.literals) == 0 {
		return NoMatch[string]()
	}
	hits := c.automaton.FindAll(input)
	return CreateMatch(len(hits) > 0, func() string {
		return c.literals[hits[0].Pattern()]
	})
}

func (c substringCondition) String() string {
	return fmt.Sprintf("containsAny(%v)", c.literals)
}

// describe renders a condition for tracing and Dump output.
func describe(c any) string {
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", c)
}
