package app

import (
	"math"
	"math/rand/v2"

	"github.com/Harvbateman/GolfSwing2/app/models"
)

// Analyzer turns an uploaded swing into attribute scores. The random
// implementation below stands in for a real video analysis pipeline; anything
// satisfying this interface can replace it without touching the upload flow.
type Analyzer interface {
	// Analyze returns the five attribute scores for the given style plus the
	// overall score (the rounded mean of the five). Callers must not expect
	// deterministic output, only values within [0,100].
	Analyze(style string) (models.Attributes, int)
}

// Per-attribute base ranges, inclusive. Power and balance skew higher than
// accuracy and consistency.
var baseRanges = struct {
	power, accuracy, consistency, balance, style [2]int
}{
	power:       [2]int{55, 90},
	accuracy:    [2]int{50, 90},
	consistency: [2]int{45, 90},
	balance:     [2]int{55, 95},
	style:       [2]int{50, 95},
}

// styleBias scales individual attributes per chosen style. Unrecognized
// styles get no adjustment.
var styleBias = map[string]map[string]float64{
	"classic":    {"accuracy": 1.05, "consistency": 1.06, "style": 1.05},
	"power":      {"power": 1.12, "accuracy": 0.98},
	"flashy":     {"style": 1.20, "consistency": 0.95},
	"minimalist": {"consistency": 1.10, "balance": 1.05, "style": 0.95},
}

type randomAnalyzer struct{}

// NewRandomAnalyzer returns the placeholder analyzer used until a real
// pipeline exists.
func NewRandomAnalyzer() Analyzer {
	return randomAnalyzer{}
}

func (randomAnalyzer) Analyze(style string) (models.Attributes, int) {
	vals := map[string]int{
		"power":       draw(baseRanges.power),
		"accuracy":    draw(baseRanges.accuracy),
		"consistency": draw(baseRanges.consistency),
		"balance":     draw(baseRanges.balance),
		"style":       draw(baseRanges.style),
	}

	for attr, mult := range styleBias[style] {
		biased := int(float64(vals[attr]) * mult)
		if biased > 100 {
			biased = 100
		}
		vals[attr] = biased
	}

	sum := 0
	for _, v := range vals {
		sum += v
	}
	overall := int(math.Round(float64(sum) / float64(len(vals))))

	attrs := models.Attributes{
		Power:       vals["power"],
		Accuracy:    vals["accuracy"],
		Consistency: vals["consistency"],
		Balance:     vals["balance"],
		Style:       vals["style"],
	}
	return attrs, overall
}

func draw(r [2]int) int {
	return r[0] + rand.IntN(r[1]-r[0]+1)
}
