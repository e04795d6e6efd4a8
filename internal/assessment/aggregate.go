package assessment

import (
	"fmt"
	"math"
)

type categoryTally struct {
	label     string
	score     int
	answered  int
	maxOption int
}

// Compute aggregates responses against the filtered items that produced them.
//
// Each category's ceiling is the largest option value across every item of that
// category in filteredItems, multiplied by the number of answered items. The crisis
// category takes part in the overall score like any other category; CrisisFlagged is
// the authoritative safety signal. Responses for ids outside filteredItems are ignored;
// a value that is not one of its item's options fails with ErrInvalidAnswer.
func Compute(responses Responses, filteredItems []Item) (Result, error) {
	if len(responses) == 0 {
		return Result{}, ErrEmptyResponseSet
	}

	var order []Category
	tallies := make(map[Category]*categoryTally)
	crisis := false
	for _, it := range filteredItems {
		t, ok := tallies[it.Category]
		if !ok {
			t = &categoryTally{label: it.CategoryLabel}
			tallies[it.Category] = t
			order = append(order, it.Category)
		}
		if m := it.maxOption(); m > t.maxOption {
			t.maxOption = m
		}
		v, answered := responses[it.ID]
		if !answered {
			continue
		}
		if !it.HasOption(v) {
			return Result{}, fmt.Errorf("%w: %d is not an option for %s", ErrInvalidAnswer, v, it.ID)
		}
		t.score += v
		t.answered++
		if it.Category == CategoryCrisis && v > 0 {
			crisis = true
		}
	}

	var res Result
	totalScore, totalMax := 0, 0
	for _, cat := range order {
		t := tallies[cat]
		if t.answered == 0 {
			continue
		}
		maxScore := t.maxOption * t.answered
		pct := 0.0
		if maxScore > 0 {
			pct = float64(t.score) / float64(maxScore) * 100
		}
		sev := SeverityFor(pct)
		res.CategoryResults = append(res.CategoryResults, CategoryResult{
			Category:           cat,
			CategoryLabel:      t.label,
			Score:              t.score,
			MaxScore:           maxScore,
			SeverityPercentage: pct,
			Severity:           sev,
			Interpretation:     Interpret(cat, sev),
		})
		totalScore += t.score
		totalMax += maxScore
	}
	if len(res.CategoryResults) == 0 {
		return Result{}, ErrEmptyResponseSet
	}

	res.OverallScore = overallScore(totalScore, totalMax)
	res.Band = BandFor(res.OverallScore)
	res.CrisisFlagged = crisis
	return res, nil
}

// overallScore converts the symptom ratio to a 0-100 wellbeing score.
func overallScore(total, max int) int {
	if max == 0 {
		return 100
	}
	wellbeing := 100 - float64(total)/float64(max)*100
	return int(math.Round(math.Max(0, wellbeing)))
}
