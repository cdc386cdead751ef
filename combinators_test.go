package match_test

import (
	"fmt"
	"testing"

	"github.com/npillmayer/match"
)

func TestComposeTransforms(t *testing.T) {
	g := func(n int) float32 {
		return float32(n) + 0.5
	}
	f := func(x float32) string {
		return fmt.Sprintf("%.3f", x)
	}
	h := match.Compose(g, f)
	if h(7) != "7.500" {
		t.Logf("composition h(7) = %q", h(7))
		t.Error("expected h(7) to return string 7.500")
	}
}

func TestComposeAsCaseTransform(t *testing.T) {
	double := func(n int) int { return n * 2 }
	show := func(n int) string { return fmt.Sprintf("%d", n) }
	m := match.New[int, string]().
		When(match.Predicate(func(n int) bool { return n > 0 })).
		Then(match.Compose(double, show)).
		OtherwiseConst("nonpositive")

	if r := m.Apply(7); r != "14" {
		t.Errorf("expected composed transform to yield 14, got %q", r)
	}
}

func TestConstIgnoresInput(t *testing.T) {
	seven := match.Const[string](7)
	if seven("ignored") != 7 {
		t.Logf("const = %v", seven("ignored"))
		t.Error("expected const transform to be integer 7")
	}
}
