package match_test

import (
	"testing"

	"github.com/npillmayer/match"
)

func TestCreateMatchIsLazy(t *testing.T) {
	calls := 0
	m := match.CreateMatch(false, func() int {
		calls++
		return 7
	})
	if m.Matches() {
		t.Error("expected CreateMatch(false, …) to be a non-match, isn't")
	}
	if calls != 0 {
		t.Errorf("expected value func not to be called on a non-match, was called %d times", calls)
	}

	m = match.CreateMatch(true, func() int {
		calls++
		return 7
	})
	if !m.Matches() {
		t.Error("expected CreateMatch(true, …) to be a match, isn't")
	}
	if calls != 1 {
		t.Errorf("expected value func to be called exactly once, was called %d times", calls)
	}
	if m.Value() != 7 {
		t.Errorf("expected match value to be 7, is %d", m.Value())
	}
}

func TestMapMatchSkipsNonMatch(t *testing.T) {
	m := match.MapMatch(match.NoMatch[int](), func(n int) string {
		t.Error("MapMatch over a non-match must not call f, did")
		return "?"
	})
	if m.Matches() {
		t.Error("expected mapped non-match to stay a non-match, didn't")
	}
}

func TestMapMatchMapsValue(t *testing.T) {
	m := match.MapMatch(match.Matched(7), func(n int) int { return n * 2 })
	if !m.Matches() || m.Value() != 14 {
		t.Logf("m = %v, %v", m.Matches(), m.Value())
		t.Error("expected Matched(7) to map to Matched(14), didn't")
	}
}

func TestMatchedZeroValueIsStillAMatch(t *testing.T) {
	m := match.Matched(0)
	if !m.Matches() {
		t.Error("expected Matched(0) to be a match: the tag decides, not the value")
	}
	var nilptr *int
	p := match.Matched(nilptr)
	if !p.Matches() {
		t.Error("expected Matched(nil pointer) to be a match, isn't")
	}
}
