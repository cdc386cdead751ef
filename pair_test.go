package match_test

import (
	"fmt"
	"testing"

	"github.com/npillmayer/match"
)

func TestPairDecompose(t *testing.T) {
	a, b := match.P(1, "one").Decompose()
	if a != 1 || b != "one" {
		t.Errorf("expected components (1, one), got (%v, %v)", a, b)
	}
}

func TestPairStructuralEquality(t *testing.T) {
	if match.P(1, "x") != match.P(1, "x") {
		t.Error("expected equal pairs to compare equal, don't")
	}
	if match.P(1, "x") == match.P(2, "x") {
		t.Error("expected unequal pairs to compare unequal, don't")
	}
}

func TestTripleDecompose(t *testing.T) {
	a, b, c := match.T3(2018, 9, 14).Decompose()
	if a != 2018 || b != 9 || c != 14 {
		t.Errorf("expected components (2018, 9, 14), got (%v, %v, %v)", a, b, c)
	}
}

// isodate exposes its components as a triple.
type isodate struct {
	year, month, day int
}

func (d isodate) Extract() match.Triple[int, int, int] {
	return match.T3(d.year, d.month, d.day)
}

func TestExtractScalar(t *testing.T) {
	f := match.Extract[circle](func(radius float64) string {
		return fmt.Sprintf("r=%.1f", radius)
	})
	if s := f(circle{radius: 2.5}); s != "r=2.5" {
		t.Errorf("expected extracted radius r=2.5, got %q", s)
	}
}

func TestExtractPair(t *testing.T) {
	f := match.Extract2[rectangle](func(w, h float64) float64 {
		return w * h
	})
	if area := f(rectangle{width: 2.5, height: 4}); area != 10.0 {
		t.Errorf("expected extracted area 10.0, got %v", area)
	}
}

func TestExtractTriple(t *testing.T) {
	f := match.Extract3[isodate](func(y, m, d int) string {
		return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
	})
	if s := f(isodate{2018, 9, 14}); s != "2018-09-14" {
		t.Errorf("expected extracted date 2018-09-14, got %q", s)
	}
}
