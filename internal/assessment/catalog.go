package assessment

import "fmt"

// Catalog is the ordered resource list. Order is the recommendation order.
type Catalog []Resource

var defaultCatalog = Catalog{
	{
		ID:             "1",
		Title:          "Managing Anxiety in Later Life",
		Category:       "Anxiety",
		Description:    "Learn effective strategies to manage anxiety and stress in your daily life.",
		Link:           "https://www.nimh.nih.gov/health/topics/anxiety-disorders",
		RecommendedFor: []Category{CategoryAnxiety},
		Audience:       all,
	},
	{
		ID:             "2",
		Title:          "Depression: Signs and Support",
		Category:       "Depression",
		Description:    "Recognize signs of depression and discover support options available to you.",
		Link:           "https://www.nia.nih.gov/health/depression-and-older-adults",
		RecommendedFor: []Category{CategoryDepression},
		Audience:       senior,
	},
	{
		ID:             "3",
		Title:          "Sleep Hygiene Tips for Better Rest",
		Category:       "Sleep",
		Description:    "Improve your sleep quality with these evidence-based recommendations.",
		Link:           "https://www.sleepfoundation.org/sleep-hygiene/healthy-sleep-tips",
		RecommendedFor: []Category{CategorySleep},
		Audience:       all,
	},
	{
		ID:             "4",
		Title:          "Mindfulness Meditation Guide",
		Category:       "Mindfulness",
		Description:    "A beginner's guide to practicing mindfulness meditation for mental wellbeing.",
		Link:           "https://www.mindful.org/meditation/mindfulness-getting-started/",
		RecommendedFor: []Category{CategoryAnxiety, CategoryDepression, CategorySleep},
		Audience:       all,
	},
	{
		ID:             "5",
		Title:          "988 Suicide & Crisis Lifeline",
		Category:       "Crisis Support",
		Description:    "Free, confidential support 24/7. Call or text 988 to reach a trained crisis counselor.",
		Link:           "https://988lifeline.org",
		RecommendedFor: []Category{CategoryCrisis},
		Audience:       all,
	},
	{
		ID:             "6",
		Title:          "Understanding Depression",
		Category:       "Depression",
		Description:    "Overview of symptoms, causes and treatment options for depression at any age.",
		Link:           "https://www.nimh.nih.gov/health/topics/depression",
		RecommendedFor: []Category{CategoryDepression, CategoryCrisis},
		Audience:       all,
	},
	{
		ID:             "7",
		Title:          "Coping with Grief and Loss",
		Category:       "Grief",
		Description:    "Guidance for mourning the death of a loved one and finding support along the way.",
		Link:           "https://www.nia.nih.gov/health/grief-and-mourning/mourning-death-spouse",
		RecommendedFor: []Category{CategoryGrief},
		Audience:       senior,
	},
	{
		ID:             "8",
		Title:          "Loneliness and Social Isolation",
		Category:       "Social Connection",
		Description:    "Tips for staying connected and finding community programs near you.",
		Link:           "https://www.nia.nih.gov/health/loneliness-and-social-isolation",
		RecommendedFor: []Category{CategorySocial, CategoryGrief},
		Audience:       senior,
	},
	{
		ID:             "9",
		Title:          "Memory Problems: What's Normal?",
		Category:       "Memory",
		Description:    "Learn which memory changes are part of aging and when to talk with a doctor.",
		Link:           "https://www.alz.org/alzheimers-dementia/10_signs",
		RecommendedFor: []Category{CategoryCognitive},
		Audience:       senior,
	},
	{
		ID:             "10",
		Title:          "Building Social Connections",
		Category:       "Social Connection",
		Description:    "Practical ways to strengthen relationships and reduce loneliness.",
		Link:           "https://www.cdc.gov/social-connectedness/",
		RecommendedFor: []Category{CategorySocial},
		Audience:       all,
	},
}

// DefaultCatalog returns a copy of the built-in resource catalog.
func DefaultCatalog() Catalog {
	return defaultCatalog.Clone()
}

func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for i, r := range c {
		out[i] = r.clone()
	}
	return out
}

// ForAudience returns the entries applicable to audience, in catalog order.
func (c Catalog) ForAudience(audience Audience) []Resource {
	out := make([]Resource, 0, len(c))
	for _, r := range c {
		if appliesTo(r.Audience, audience) {
			out = append(out, r.clone())
		}
	}
	return out
}

// Validate checks that every entry has an id and an external link.
func (c Catalog) Validate() error {
	seen := make(map[string]bool, len(c))
	for i, r := range c {
		if r.ID == "" {
			return fmt.Errorf("resource %d: missing id", i)
		}
		if seen[r.ID] {
			return fmt.Errorf("resource %s: duplicate id", r.ID)
		}
		seen[r.ID] = true
		if r.Link == "" {
			return fmt.Errorf("resource %s: missing link", r.ID)
		}
		if len(r.Audience) == 0 {
			return fmt.Errorf("resource %s: no audience", r.ID)
		}
	}
	return nil
}
