package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answerAll(items []Item, pick func(Item) int) Responses {
	r := make(Responses, len(items))
	for _, it := range items {
		r[it.ID] = pick(it)
	}
	return r
}

func TestCompute_EmptyResponses(t *testing.T) {
	_, err := Compute(Responses{}, DefaultBank())
	assert.ErrorIs(t, err, ErrEmptyResponseSet)

	// 答案与题目不匹配时同样视为空
	_, err = Compute(Responses{"unknown": 1}, DefaultBank())
	assert.ErrorIs(t, err, ErrEmptyResponseSet)
}

func TestCompute_AllZero(t *testing.T) {
	items := DefaultBank().FilterForAudience(AudienceSenior)
	res, err := Compute(answerAll(items, func(Item) int { return 0 }), items)
	require.NoError(t, err)

	for _, cr := range res.CategoryResults {
		assert.Equal(t, SeverityLow, cr.Severity, "category %s", cr.Category)
		assert.Zero(t, cr.Score)
	}
	assert.Equal(t, 100, res.OverallScore)
	assert.Equal(t, BandGood, res.Band)
	assert.False(t, res.CrisisFlagged)
}

func TestCompute_AllMax(t *testing.T) {
	items := DefaultBank().FilterForAudience(AudienceSenior)
	res, err := Compute(answerAll(items, Item.maxOption), items)
	require.NoError(t, err)

	for _, cr := range res.CategoryResults {
		assert.Equal(t, SeverityHigh, cr.Severity, "category %s", cr.Category)
		assert.InDelta(t, 100.0, cr.SeverityPercentage, 1e-9)
	}
	assert.Equal(t, 0, res.OverallScore)
	assert.Equal(t, BandLow, res.Band)
	assert.True(t, res.CrisisFlagged)
}

func TestCompute_OneResultPerCategory(t *testing.T) {
	for _, audience := range []Audience{AudienceAll, AudienceSenior} {
		items := DefaultBank().FilterForAudience(audience)
		res, err := Compute(answerAll(items, func(Item) int { return 1 }), items)
		require.NoError(t, err)

		distinct := map[Category]bool{}
		for _, it := range items {
			distinct[it.Category] = true
		}
		assert.Len(t, res.CategoryResults, len(distinct))

		seen := map[Category]bool{}
		for _, cr := range res.CategoryResults {
			assert.False(t, seen[cr.Category], "duplicate %s", cr.Category)
			seen[cr.Category] = true
		}
	}
}

func TestCompute_SingleAnsweredItem(t *testing.T) {
	items := []Item{
		{ID: "a", Category: CategoryGrief, CategoryLabel: "Grief", Options: []Option{{Value: 0}, {Value: 1}, {Value: 2}, {Value: 3}}},
		{ID: "b", Category: CategoryGrief, CategoryLabel: "Grief", Options: []Option{{Value: 0}, {Value: 1}}},
	}

	res, err := Compute(Responses{"b": 1}, items)
	require.NoError(t, err)

	// 上限取整个维度的最大选项值，而不是该题自身的最大值
	cr, ok := res.Category(CategoryGrief)
	require.True(t, ok)
	assert.Equal(t, 1, cr.Score)
	assert.Equal(t, 3, cr.MaxScore)
	assert.InDelta(t, 33.33, cr.SeverityPercentage, 0.01)
	assert.Equal(t, SeverityModerate, cr.Severity)
	assert.Equal(t, "Grief", cr.CategoryLabel)

	res, err = Compute(Responses{"a": 2}, items)
	require.NoError(t, err)
	cr, _ = res.Category(CategoryGrief)
	assert.InDelta(t, 66.67, cr.SeverityPercentage, 0.01)
	assert.Equal(t, SeverityHigh, cr.Severity)
}

func TestCompute_SkipsUnansweredCategories(t *testing.T) {
	items := DefaultBank().FilterForAudience(AudienceAll)
	res, err := Compute(Responses{"dep-1": 3, "dep-2": 0}, items)
	require.NoError(t, err)

	require.Len(t, res.CategoryResults, 1)
	cr := res.CategoryResults[0]
	assert.Equal(t, CategoryDepression, cr.Category)
	assert.Equal(t, 6, cr.MaxScore)
	assert.InDelta(t, 50.0, cr.SeverityPercentage, 1e-9)
	assert.Equal(t, SeverityModerate, cr.Severity)
	assert.Equal(t, 50, res.OverallScore)
}

func TestCompute_ZeroCeiling(t *testing.T) {
	items := []Item{
		{ID: "flat", Category: CategorySleep, Options: []Option{{Text: "a", Value: 0}, {Text: "b", Value: 0}}},
	}

	res, err := Compute(Responses{"flat": 0}, items)
	require.NoError(t, err)

	cr := res.CategoryResults[0]
	assert.Zero(t, cr.MaxScore)
	assert.Zero(t, cr.SeverityPercentage)
	assert.Equal(t, SeverityLow, cr.Severity)
	assert.Equal(t, 100, res.OverallScore)
}

func TestCompute_CrisisFlag(t *testing.T) {
	items := DefaultBank().FilterForAudience(AudienceSenior)
	responses := answerAll(items, func(it Item) int {
		if it.Category == CategoryCrisis {
			return 1
		}
		return 0
	})

	res, err := Compute(responses, items)
	require.NoError(t, err)
	assert.True(t, res.CrisisFlagged)

	// 危机题计入总分
	assert.Equal(t, 97, res.OverallScore)

	cr, ok := res.Category(CategoryCrisis)
	require.True(t, ok)
	assert.Equal(t, SeverityModerate, cr.Severity)
}

func TestCompute_OverallAlwaysInRange(t *testing.T) {
	items := DefaultBank().FilterForAudience(AudienceSenior)
	for v := 0; v <= 3; v++ {
		for pivot := range items {
			responses := answerAll(items, func(it Item) int {
				if it.ID == items[pivot].ID {
					return 3 - v
				}
				return v
			})
			res, err := Compute(responses, items)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, res.OverallScore, 0)
			assert.LessOrEqual(t, res.OverallScore, 100)
		}
	}
}

func TestCompute_Idempotent(t *testing.T) {
	items := DefaultBank().FilterForAudience(AudienceSenior)
	responses := answerAll(items, func(it Item) int { return len(it.ID) % 4 })

	first, err := Compute(responses, items)
	require.NoError(t, err)
	second, err := Compute(responses, items)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSeverityFor(t *testing.T) {
	tests := []struct {
		pct  float64
		want Severity
	}{
		{0, SeverityLow},
		{29.99, SeverityLow},
		{30, SeverityModerate},
		{59.99, SeverityModerate},
		{60, SeverityHigh},
		{100, SeverityHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SeverityFor(tt.pct), "pct %v", tt.pct)
	}
}

func TestBandFor(t *testing.T) {
	assert.Equal(t, BandGood, BandFor(100))
	assert.Equal(t, BandGood, BandFor(70))
	assert.Equal(t, BandFair, BandFor(69))
	assert.Equal(t, BandFair, BandFor(40))
	assert.Equal(t, BandLow, BandFor(39))
}

func TestInterpret_Total(t *testing.T) {
	for _, c := range Categories {
		for _, s := range []Severity{SeverityLow, SeverityModerate, SeverityHigh} {
			assert.NotEmpty(t, Interpret(c, s), "%s/%s", c, s)
		}
	}
	assert.Equal(t, GenericInterpretation, Interpret(CategoryGrief, SeverityLow))
	assert.Equal(t, GenericInterpretation, Interpret(CategoryCrisis, SeverityModerate))
	assert.Equal(t, GenericInterpretation, Interpret("unknown", SeverityHigh))
}

func TestCompute_RejectsValuesOutsideOptions(t *testing.T) {
	items := DefaultBank().FilterForAudience(AudienceAll)
	tests := []struct {
		name      string
		responses Responses
	}{
		{name: "negative", responses: Responses{"dep-1": -5, "dep-2": 0}},
		{name: "above max", responses: Responses{"dep-1": 99, "dep-2": 0}},
		{name: "one bad among many", responses: Responses{"dep-1": 1, "anx-1": 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compute(tt.responses, items)
			assert.ErrorIs(t, err, ErrInvalidAnswer)
			assert.Empty(t, res.CategoryResults)
		})
	}
}
