package scoring

import (
	"sort"
	"strings"

	"github.com/mfriesen/discovery/internal/domain"
	"github.com/mfriesen/discovery/internal/questionnaire"
)

// Scoring constants. An offering needs at least MinScore points to be
// recommended; at most MaxRecommended make the cut.
const (
	MinScore       = 5
	MaxRecommended = 6

	painPointBonus     = 10
	contactMethodBonus = 5
	urgencyBonus       = 8
)

// Reason records one factor that contributed points, for explanations and
// the fallback summary.
type Reason struct {
	Factor string
	Points int
}

// Recommendation pairs an offering with its computed score.
type Recommendation struct {
	Offering domain.Offering
	Score    int
	Reasons  []Reason
}

// Result splits the scored catalog into the recommended subset and the
// rest, both in descending score order (stable on catalog order for ties).
type Result struct {
	Recommended []Recommendation
	Others      []Recommendation
}

// Score rates one offering against the answer set. Pure and deterministic:
// the same inputs always produce the same score.
func Score(offering domain.Offering, answers domain.AnswerSet) (int, []Reason) {
	text := strings.ToLower(offering.SearchText())

	var total int
	var reasons []Reason
	factors := []func(string, domain.AnswerSet) (int, string){
		scorePainPoints,
		scoreContactMethods,
		scoreUrgency,
		scoreInvestmentFit(offering.Complexity),
		scoreTeamSizeFit(offering.Complexity),
	}
	for _, f := range factors {
		points, factor := f(text, answers)
		if points > 0 {
			total += points
			reasons = append(reasons, Reason{Factor: factor, Points: points})
		}
	}
	return total, reasons
}

// Recommend scores the industry-scoped catalog subset and splits it at the
// threshold. Order within each bucket is by descending score, ties broken
// by original catalog position.
func Recommend(offerings []domain.Offering, answers domain.AnswerSet) Result {
	scored := make([]Recommendation, 0, len(offerings))
	for _, o := range offerings {
		score, reasons := Score(o, answers)
		scored = append(scored, Recommendation{Offering: o, Score: score, Reasons: reasons})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	var res Result
	for _, rec := range scored {
		if len(res.Recommended) < MaxRecommended && rec.Score >= MinScore {
			res.Recommended = append(res.Recommended, rec)
		} else {
			res.Others = append(res.Others, rec)
		}
	}
	return res
}

// scorePainPoints awards the bonus once per selected pain point whose
// keyword set hits the offering text. Multiple keyword hits for the same
// pain point do not stack.
func scorePainPoints(text string, answers domain.AnswerSet) (int, string) {
	points := 0
	for _, pp := range answers.Values(questionnaire.QPainPoints) {
		if matchesAny(text, painPointKeywords[pp]) {
			points += painPointBonus
		}
	}
	return points, "pain_points"
}

func scoreContactMethods(text string, answers domain.AnswerSet) (int, string) {
	points := 0
	for _, m := range answers.Values(questionnaire.QContactMethods) {
		if matchesAny(text, contactMethodKeywords[m]) {
			points += contactMethodBonus
		}
	}
	return points, "contact_methods"
}

// scoreUrgency applies a single bonus when inquiries slip through daily or
// weekly and the offering addresses immediacy.
func scoreUrgency(text string, answers domain.AnswerSet) (int, string) {
	missed := answers.Value(questionnaire.QMissedInquiries)
	if (missed == "daily" || missed == "weekly") && matchesAny(text, urgencyKeywords) {
		return urgencyBonus, "urgency"
	}
	return 0, "urgency"
}

func scoreInvestmentFit(complexity domain.Complexity) func(string, domain.AnswerSet) (int, string) {
	return func(_ string, answers domain.AnswerSet) (int, string) {
		switch answers.Value(questionnaire.QInvestment) {
		case "low":
			if complexity == domain.ComplexityLow {
				return 3, "investment_fit"
			}
		case "medium":
			if complexity != domain.ComplexityHigh {
				return 2, "investment_fit"
			}
		case "high":
			return 1, "investment_fit"
		}
		return 0, "investment_fit"
	}
}

func scoreTeamSizeFit(complexity domain.Complexity) func(string, domain.AnswerSet) (int, string) {
	return func(_ string, answers domain.AnswerSet) (int, string) {
		switch answers.Value(questionnaire.QTeamSize) {
		case "solo", "2-5":
			if complexity == domain.ComplexityLow {
				return 2, "team_size_fit"
			}
		case "16-50", "51-200", "200+":
			if complexity != domain.ComplexityLow {
				return 2, "team_size_fit"
			}
		}
		return 0, "team_size_fit"
	}
}

func matchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
