package app

import (
	"math"
	"testing"
)

// The analyzer is deliberately non-deterministic, so these tests check
// bounds and arithmetic over many draws instead of exact values.

func TestAnalyzeBoundsAndOverall(t *testing.T) {
	styles := []string{"classic", "power", "flashy", "minimalist", "not-a-style", ""}
	analyzer := NewRandomAnalyzer()

	for _, style := range styles {
		t.Run("style="+style, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				attrs, overall := analyzer.Analyze(style)

				vals := []int{attrs.Power, attrs.Accuracy, attrs.Consistency, attrs.Balance, attrs.Style}
				sum := 0
				for _, v := range vals {
					if v < 0 || v > 100 {
						t.Fatalf("attribute out of range for style %q: %+v", style, attrs)
					}
					sum += v
				}

				want := int(math.Round(float64(sum) / float64(len(vals))))
				if overall != want {
					t.Fatalf("overall = %d, want rounded mean %d (attrs %+v)", overall, want, attrs)
				}
			}
		})
	}
}

func TestAnalyzeStyleBias(t *testing.T) {
	analyzer := NewRandomAnalyzer()

	t.Run("power style", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			attrs, _ := analyzer.Analyze("power")
			// accuracy is damped: at most int(90 * 0.98)
			if attrs.Accuracy > 88 {
				t.Fatalf("power style accuracy = %d, want <= 88", attrs.Accuracy)
			}
			// power is boosted: at least int(55 * 1.12)
			if attrs.Power < 61 {
				t.Fatalf("power style power = %d, want >= 61", attrs.Power)
			}
		}
	})

	t.Run("flashy style", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			attrs, _ := analyzer.Analyze("flashy")
			if attrs.Consistency > 85 {
				t.Fatalf("flashy style consistency = %d, want <= 85", attrs.Consistency)
			}
			if attrs.Style < 60 {
				t.Fatalf("flashy style style = %d, want >= 60", attrs.Style)
			}
		}
	})

	t.Run("unrecognized style stays in base ranges", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			attrs, _ := analyzer.Analyze("freestyle")
			checks := []struct {
				name   string
				val    int
				lo, hi int
			}{
				{"power", attrs.Power, 55, 90},
				{"accuracy", attrs.Accuracy, 50, 90},
				{"consistency", attrs.Consistency, 45, 90},
				{"balance", attrs.Balance, 55, 95},
				{"style", attrs.Style, 50, 95},
			}
			for _, c := range checks {
				if c.val < c.lo || c.val > c.hi {
					t.Fatalf("unbiased %s = %d, want in [%d,%d]", c.name, c.val, c.lo, c.hi)
				}
			}
		}
	})
}

func TestDraw(t *testing.T) {
	for i := 0; i < 1000; i++ {
		if got := draw([2]int{10, 12}); got < 10 || got > 12 {
			t.Fatalf("draw([10,12]) = %d, out of range", got)
		}
	}
	if got := draw([2]int{7, 7}); got != 7 {
		t.Fatalf("draw on a single-value range = %d, want 7", got)
	}
}
