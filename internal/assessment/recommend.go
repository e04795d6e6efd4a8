package assessment

// fallbackLimit caps the general list shown when no specific resource matches.
const fallbackLimit = 4

// ConcernCategories returns the categories needing attention: every category whose
// severity is above low, plus crisis whenever the crisis flag is set.
func ConcernCategories(result Result) []Category {
	var out []Category
	hasCrisis := false
	for _, cr := range result.CategoryResults {
		if cr.Severity == SeverityLow {
			continue
		}
		out = append(out, cr.Category)
		if cr.Category == CategoryCrisis {
			hasCrisis = true
		}
	}
	if result.CrisisFlagged && !hasCrisis {
		out = append(out, CategoryCrisis)
	}
	return out
}

// Recommend selects catalog entries for the audience that address the result's concerns,
// in catalog order. When nothing matches, the first entries for the audience are
// returned instead so the list is never empty while the audience has any entries.
func Recommend(result Result, audience Audience, catalog Catalog) []Resource {
	concerns := ConcernCategories(result)
	candidates := catalog.ForAudience(audience)

	matched := make([]Resource, 0, len(candidates))
	for _, r := range candidates {
		if r.addresses(concerns) {
			matched = append(matched, r)
		}
	}
	if len(matched) > 0 {
		return matched
	}

	if len(candidates) > fallbackLimit {
		candidates = candidates[:fallbackLimit]
	}
	return candidates
}
