package scoring

import (
	"testing"

	"github.com/mfriesen/discovery/internal/domain"
	"github.com/mfriesen/discovery/internal/questionnaire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offering(name, desc string, complexity domain.Complexity) domain.Offering {
	return domain.Offering{
		Name:        name,
		Industry:    "Restaurants",
		Category:    "General",
		Description: desc,
		Complexity:  complexity,
	}
}

func TestScore_PainPointCountsOncePerPainPoint(t *testing.T) {
	answers := domain.AnswerSet{}
	answers.Toggle(questionnaire.QPainPoints, "missed-calls", 0)

	// Multiple keyword hits ("call" and "phone") still score one bonus.
	o := offering("Answering Desk", "answers every phone call on any call line", "")
	score, reasons := Score(o, answers)
	assert.Equal(t, 10, score)
	require.Len(t, reasons, 1)
	assert.Equal(t, "pain_points", reasons[0].Factor)
	assert.Equal(t, 10, reasons[0].Points)
}

func TestScore_TwoPainPointsStack(t *testing.T) {
	answers := domain.AnswerSet{}
	answers.Toggle(questionnaire.QPainPoints, "missed-calls", 0)
	answers.Toggle(questionnaire.QPainPoints, "slow-quotes", 0)

	o := offering("Quote Line", "turns phone calls into a quote", "")
	score, _ := Score(o, answers)
	assert.Equal(t, 20, score)
}

func TestScore_ContactMethodBonus(t *testing.T) {
	answers := domain.AnswerSet{}
	answers.Toggle(questionnaire.QContactMethods, "whatsapp", 0)
	answers.Toggle(questionnaire.QContactMethods, "email", 0)

	o := offering("Chat Desk", "answers whatsapp chat and email inbox questions", "")
	score, _ := Score(o, answers)
	assert.Equal(t, 10, score) // 5 per matched method
}

func TestScore_UrgencyBonusOnlyWhenFrequentlyMissing(t *testing.T) {
	o := offering("Night Line", "answers 24/7 with instant replies", "")

	for missed, want := range map[string]int{"daily": 8, "weekly": 8, "monthly": 0, "rarely": 0} {
		answers := domain.AnswerSet{}
		answers.Set(questionnaire.QMissedInquiries, missed)
		score, _ := Score(o, answers)
		assert.Equal(t, want, score, "missed_inquiries=%s", missed)
	}
}

func TestScore_InvestmentAlignment(t *testing.T) {
	cases := []struct {
		investment string
		complexity domain.Complexity
		want       int
	}{
		{"low", domain.ComplexityLow, 3},
		{"low", domain.ComplexityMedium, 0},
		{"medium", domain.ComplexityLow, 2},
		{"medium", domain.ComplexityMedium, 2},
		{"medium", domain.ComplexityHigh, 0},
		{"high", domain.ComplexityHigh, 1},
		{"high", domain.ComplexityLow, 1},
	}
	for _, tc := range cases {
		answers := domain.AnswerSet{}
		answers.Set(questionnaire.QInvestment, tc.investment)
		score, _ := Score(offering("X", "no keyword overlap here", tc.complexity), answers)
		assert.Equal(t, tc.want, score, "investment=%s complexity=%s", tc.investment, tc.complexity)
	}
}

func TestScore_TeamSizeAlignment(t *testing.T) {
	cases := []struct {
		team       string
		complexity domain.Complexity
		want       int
	}{
		{"solo", domain.ComplexityLow, 2},
		{"2-5", domain.ComplexityLow, 2},
		{"2-5", domain.ComplexityHigh, 0},
		{"6-15", domain.ComplexityLow, 0},
		{"16-50", domain.ComplexityMedium, 2},
		{"200+", domain.ComplexityHigh, 2},
		{"200+", domain.ComplexityLow, 0},
	}
	for _, tc := range cases {
		answers := domain.AnswerSet{}
		answers.Set(questionnaire.QTeamSize, tc.team)
		score, _ := Score(offering("X", "no keyword overlap here", tc.complexity), answers)
		assert.Equal(t, tc.want, score, "team=%s complexity=%s", tc.team, tc.complexity)
	}
}

func TestScore_MonotoneInMatchingText(t *testing.T) {
	answers := domain.AnswerSet{}
	answers.Toggle(questionnaire.QPainPoints, "missed-calls", 0)
	answers.Toggle(questionnaire.QPainPoints, "appointment-chaos", 0)

	without := offering("Desk", "handles reservations", "")
	with := without
	with.Description += " and every phone call"

	scoreWithout, _ := Score(without, answers)
	scoreWith, _ := Score(with, answers)
	assert.GreaterOrEqual(t, scoreWith, scoreWithout,
		"adding matching keywords must never lower the score")
	assert.Greater(t, scoreWith, scoreWithout)
}

func TestRecommend_ScoreOfFiveMakesTheCut(t *testing.T) {
	answers := domain.AnswerSet{}
	answers.Toggle(questionnaire.QContactMethods, "phone", 0)

	// One matched contact method = exactly 5 points.
	atThreshold := offering("Front Desk", "takes every customer call", domain.ComplexityHigh)
	score, _ := Score(atThreshold, answers)
	require.Equal(t, MinScore, score)

	res := Recommend([]domain.Offering{atThreshold}, answers)
	require.Len(t, res.Recommended, 1)
	assert.Empty(t, res.Others)
}

func TestRecommend_ScoreOfFourDoesNot(t *testing.T) {
	answers := domain.AnswerSet{}
	answers.Set(questionnaire.QInvestment, "medium")
	answers.Set(questionnaire.QTeamSize, "16-50")

	// Investment fit (+2) plus team-size fit (+2) = 4, one short.
	below := offering("Paper Shuffler", "files documents quietly", domain.ComplexityMedium)
	score, _ := Score(below, answers)
	require.Equal(t, 4, score)

	res := Recommend([]domain.Offering{below}, answers)
	assert.Empty(t, res.Recommended)
	require.Len(t, res.Others, 1)
	assert.Equal(t, "Paper Shuffler", res.Others[0].Offering.Name)
}

func TestRecommend_CapAndStableOrder(t *testing.T) {
	answers := domain.AnswerSet{}
	answers.Toggle(questionnaire.QPainPoints, "missed-calls", 0)

	var offerings []domain.Offering
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		offerings = append(offerings, offering(name+" Line", "answers the phone", ""))
	}

	res := Recommend(offerings, answers)
	require.Len(t, res.Recommended, MaxRecommended)
	require.Len(t, res.Others, 2)

	// All scores tie; catalog order must be preserved in both buckets.
	for i, want := range []string{"A", "B", "C", "D", "E", "F"} {
		assert.Equal(t, want+" Line", res.Recommended[i].Offering.Name)
	}
	assert.Equal(t, "G Line", res.Others[0].Offering.Name)
	assert.Equal(t, "H Line", res.Others[1].Offering.Name)
}

func TestRecommend_Deterministic(t *testing.T) {
	answers := domain.AnswerSet{}
	answers.Toggle(questionnaire.QPainPoints, "appointment-chaos", 0)
	answers.Set(questionnaire.QMissedInquiries, "daily")
	answers.Set(questionnaire.QInvestment, "medium")

	offerings := []domain.Offering{
		offering("Booking Sync", "keeps booking calendars aligned", domain.ComplexityLow),
		offering("Night Desk", "instant 24/7 answers", domain.ComplexityMedium),
		offering("Back Office", "files paperwork", domain.ComplexityHigh),
	}

	first := Recommend(offerings, answers)
	second := Recommend(offerings, answers)
	assert.Equal(t, first, second)
}
