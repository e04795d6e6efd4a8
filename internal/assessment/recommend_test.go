package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resourceIDs(rs []Resource) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func TestConcernCategories(t *testing.T) {
	res := Result{
		CategoryResults: []CategoryResult{
			{Category: CategoryDepression, Severity: SeverityHigh},
			{Category: CategorySleep, Severity: SeverityLow},
			{Category: CategoryAnxiety, Severity: SeverityModerate},
			{Category: CategoryCrisis, Severity: SeverityLow},
		},
		CrisisFlagged: true,
	}

	assert.Equal(t, []Category{CategoryDepression, CategoryAnxiety, CategoryCrisis}, ConcernCategories(res))

	res.CrisisFlagged = false
	assert.Equal(t, []Category{CategoryDepression, CategoryAnxiety}, ConcernCategories(res))
}

func TestConcernCategories_CrisisNotDuplicated(t *testing.T) {
	res := Result{
		CategoryResults: []CategoryResult{{Category: CategoryCrisis, Severity: SeverityHigh}},
		CrisisFlagged:   true,
	}
	assert.Equal(t, []Category{CategoryCrisis}, ConcernCategories(res))
}

func TestRecommend_CrisisOverride(t *testing.T) {
	s := DefaultEngine().StartSession(AudienceSenior)
	for s.State() == StateCollecting {
		item, err := s.CurrentQuestion()
		require.NoError(t, err)
		v := 0
		if item.Category == CategoryCrisis {
			v = 1
		}
		_, err = s.Answer(v)
		require.NoError(t, err)
	}

	res, err := s.Result()
	require.NoError(t, err)
	require.True(t, res.CrisisFlagged)
	for _, cr := range res.CategoryResults {
		if cr.Category != CategoryCrisis {
			assert.Equal(t, SeverityLow, cr.Severity)
		}
	}
	assert.Contains(t, ConcernCategories(res), CategoryCrisis)

	recs, err := s.Recommendations()
	require.NoError(t, err)
	tagged := false
	for _, r := range recs {
		for _, c := range r.RecommendedFor {
			if c == CategoryCrisis {
				tagged = true
			}
		}
	}
	assert.True(t, tagged, "expected a crisis resource in %v", resourceIDs(recs))
}

func TestRecommend_MatchesInCatalogOrder(t *testing.T) {
	res := Result{CategoryResults: []CategoryResult{
		{Category: CategorySleep, Severity: SeverityHigh},
		{Category: CategoryAnxiety, Severity: SeverityModerate},
	}}

	recs := Recommend(res, AudienceAll, DefaultCatalog())
	assert.Equal(t, []string{"1", "3", "4"}, resourceIDs(recs))
}

func TestRecommend_AudienceFilter(t *testing.T) {
	res := Result{CategoryResults: []CategoryResult{{Category: CategoryGrief, Severity: SeverityHigh}}}

	assert.Equal(t, []string{"7", "8"}, resourceIDs(Recommend(res, AudienceSenior, DefaultCatalog())))

	// 没有面向所有人的哀伤资源时退回通用列表
	fallback := Recommend(res, AudienceAll, DefaultCatalog())
	assert.Equal(t, []string{"1", "3", "4", "5"}, resourceIDs(fallback))
}

func TestRecommend_FallbackNeverEmpty(t *testing.T) {
	lowOnly := Result{CategoryResults: []CategoryResult{{Category: CategorySleep, Severity: SeverityLow}}}

	tests := []struct {
		name     string
		audience Audience
		catalog  Catalog
		want     []string
	}{
		{
			name:     "truncated to four",
			audience: AudienceSenior,
			catalog:  DefaultCatalog(),
			want:     []string{"1", "2", "3", "4"},
		},
		{
			name:     "fewer than four",
			audience: "visitor",
			catalog: Catalog{
				{ID: "a", Link: "https://example.org/a", Audience: senior},
				{ID: "b", Link: "https://example.org/b", Audience: all},
			},
			want: []string{"b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resourceIDs(Recommend(lowOnly, tt.audience, tt.catalog)))
		})
	}
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	res := Result{CrisisFlagged: true}
	assert.Empty(t, Recommend(res, AudienceAll, Catalog{}))
}
