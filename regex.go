package match

import (
	"fmt"
	"regexp"
)

// Groups holds the capture groups of a successful regex condition. Group
// indexing is one-based; index 0 is the full match. A Groups value is
// produced within a single Evaluate call and carries everything extracted
// from the input; conditions never stash captures for a later call to
// pick up.
type Groups struct {
	groups []string
}

// Group returns the text of capture group i (one-based). Group(0) is the
// text matched by the entire pattern. A group that participated in the
// match but captured nothing returns the empty string.
func (g Groups) Group(i int) string {
	assertThat(i >= 0 && i < len(g.groups), "capture group index %d out of range [0, %d]", i, len(g.groups)-1)
	return g.groups[i]
}

// Count returns the number of capture groups in the pattern, not counting
// group 0.
func (g Groups) Count() int {
	return len(g.groups) - 1
}

// Regex creates a condition that matches strings against the given regular
// expression. The match is anchored: the entire input must satisfy the
// pattern, a partial hit does not count. On match, the condition maps the
// input to its capture Groups. The pattern is compiled exactly once, at
// construction time; an invalid pattern panics with the syntax error, and
// the condition is never created.
func Regex(pattern string) Condition[string, Groups] {
	return regexCondition{
		re:      regexp.MustCompile(anchored(pattern)),
		pattern: pattern,
	}
}

// RegexCompiled creates a condition from an already compiled regular
// expression, for callers who need the error-returning compilation path or
// share a pattern between conditions. The full-match anchoring is applied
// on top of re's pattern.
func RegexCompiled(re *regexp.Regexp) Condition[string, Groups] {
	return regexCondition{
		re:      regexp.MustCompile(anchored(re.String())),
		pattern: re.String(),
	}
}

// Regex1 creates a condition like Regex that maps the input to the text of
// capture group 1.
func Regex1(pattern string) Condition[string, string] {
	return regexGroupCondition{delegate: Regex(pattern).(regexCondition)}
}

// Regex2 creates a condition like Regex that maps the input to a Pair of
// the texts of capture groups 1 and 2.
func Regex2(pattern string) Condition[string, Pair[string, string]] {
	return regexPairCondition{delegate: Regex(pattern).(regexCondition)}
}

// anchored wraps a pattern such that it has to match the complete input.
// The wrapping group is non-capturing, client group indexes are unaffected.
func anchored(pattern string) string {
	return `\A(?:` + pattern + `)\z`
}

type regexCondition struct {
	re      *regexp.Regexp
	pattern string
}

// Evaluate tests and extracts in one atomic step: the submatch scan either
// yields all captures or nothing.
func (c regexCondition) Evaluate(input string) MaybeMatch[Groups] {
	captured := c.re.FindStringSubmatch(input)
	return CreateMatch(captured != nil, func() Groups {
		return Groups{groups: captured}
	})
}

func (c regexCondition) String() string {
	return fmt.Sprintf("regex(%s)", c.pattern)
}

type regexGroupCondition struct {
	delegate regexCondition
}

func (c regexGroupCondition) Evaluate(input string) MaybeMatch[string] {
	return MapMatch(c.delegate.Evaluate(input), func(g Groups) string {
		return g.Group(1)
	})
}

func (c regexGroupCondition) String() string {
	return fmt.Sprintf("regex1(%s)", c.delegate.pattern)
}

type regexPairCondition struct {
	delegate regexCondition
}

func (c regexPairCondition) Evaluate(input string) MaybeMatch[Pair[string, string]] {
	return MapMatch(c.delegate.Evaluate(input), func(g Groups) Pair[string, string] {
		return P(g.Group(1), g.Group(2))
	})
}

func (c regexPairCondition) String() string {
	return fmt.Sprintf("regex2(%s)", c.delegate.pattern)
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("match: "+msg, msgargs...)
		panic(msg)
	}
}
