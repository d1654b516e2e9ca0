// Package scoring computes the screening likelihood from questionnaire
// answers. It is pure: no I/O, no state, fully deterministic.
package scoring

// Likelihood is the band derived from the percentage score.
type Likelihood string

const (
	LikelihoodLow    Likelihood = "Low"
	LikelihoodMedium Likelihood = "Medium"
	LikelihoodHigh   Likelihood = "High"
)

// NumAnswers is the fixed size of a questionnaire.
const NumAnswers = 10

// maxScore is NumAnswers * the highest per-answer value.
const maxScore = NumAnswers * 3

// answerPoints maps a raw answer to its point value. Anything not in
// the map (including empty or misspelled answers) scores zero; that is
// the intended permissive default, not an error.
var answerPoints = map[string]int{
	"often":     3,
	"sometimes": 2,
	"rarely":    1,
	"never":     0,
}

var recommendations = map[Likelihood]string{
	LikelihoodHigh:   "Consult a specialist and consider therapies.",
	LikelihoodMedium: "Monitor child behavior, consult doctor if needed.",
	LikelihoodLow:    "No major concerns, keep observing.",
}

// Outcome is the computed screening result triple, plus the raw score.
type Outcome struct {
	Score          int
	Percentage     float64
	Likelihood     Likelihood
	Recommendation string
}

// Evaluate scores the ten answers and derives the likelihood band and
// recommendation text.
func Evaluate(answers [NumAnswers]string) Outcome {
	score := 0
	for _, a := range answers {
		score += answerPoints[a]
	}

	percentage := float64(score) / float64(maxScore) * 100
	likelihood := BandOf(percentage)

	return Outcome{
		Score:          score,
		Percentage:     percentage,
		Likelihood:     likelihood,
		Recommendation: recommendations[likelihood],
	}
}

// BandOf returns the likelihood band for a percentage in [0,100].
// Boundaries: exactly 30 is Low, exactly 60 is Medium.
func BandOf(percentage float64) Likelihood {
	switch {
	case percentage > 60:
		return LikelihoodHigh
	case percentage > 30:
		return LikelihoodMedium
	default:
		return LikelihoodLow
	}
}

// RecommendationFor returns the fixed recommendation text for a band.
func RecommendationFor(l Likelihood) string {
	return recommendations[l]
}
