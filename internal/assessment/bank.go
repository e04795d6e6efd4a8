package assessment

import "fmt"

// Bank is the ordered question catalog. Authoring order is the order questions are asked.
type Bank []Item

func frequencyOptions() []Option {
	return []Option{
		{Text: "Not at all", Value: 0},
		{Text: "Several days", Value: 1},
		{Text: "More than half the days", Value: 2},
		{Text: "Nearly every day", Value: 3},
	}
}

func agreementOptions() []Option {
	return []Option{
		{Text: "Never", Value: 0},
		{Text: "Sometimes", Value: 1},
		{Text: "Often", Value: 2},
		{Text: "Always", Value: 3},
	}
}

var (
	all    = []Audience{AudienceAll}
	senior = []Audience{AudienceSenior}
)

// 题库顺序即提问顺序，危机筛查题必须放在最后
var defaultBank = Bank{
	{
		ID:            "dep-1",
		Question:      "How often have you been bothered by feeling down, depressed, or hopeless over the past 2 weeks?",
		Category:      CategoryDepression,
		CategoryLabel: "Depression",
		Audience:      all,
		Options:       frequencyOptions(),
	},
	{
		ID:            "dep-2",
		Question:      "How often have you had little interest or pleasure in doing things over the past 2 weeks?",
		Category:      CategoryDepression,
		CategoryLabel: "Depression",
		Audience:      all,
		Options:       frequencyOptions(),
	},
	{
		ID:            "anx-1",
		Question:      "How often have you been feeling nervous, anxious, or on edge over the past 2 weeks?",
		Category:      CategoryAnxiety,
		CategoryLabel: "Anxiety",
		Audience:      all,
		Options:       frequencyOptions(),
	},
	{
		ID:            "anx-2",
		Question:      "How often have you not been able to stop or control worrying over the past 2 weeks?",
		Category:      CategoryAnxiety,
		CategoryLabel: "Anxiety",
		Audience:      all,
		Options:       frequencyOptions(),
	},
	{
		ID:            "slp-1",
		Question:      "How often have you had trouble falling or staying asleep over the past 2 weeks?",
		Category:      CategorySleep,
		CategoryLabel: "Sleep",
		Audience:      all,
		Options:       frequencyOptions(),
	},
	{
		ID:            "slp-2",
		Question:      "How often have you felt tired or had little energy during the day?",
		Category:      CategorySleep,
		CategoryLabel: "Sleep",
		Audience:      all,
		Options:       frequencyOptions(),
	},
	{
		ID:            "soc-1",
		Question:      "How often do you feel that you lack companionship?",
		Category:      CategorySocial,
		CategoryLabel: "Social Connection",
		Audience:      all,
		Options:       agreementOptions(),
	},
	{
		ID:            "soc-2",
		Question:      "How often do you feel isolated from family or friends since retiring or moving?",
		Category:      CategorySocial,
		CategoryLabel: "Social Connection",
		Audience:      senior,
		Options:       agreementOptions(),
	},
	{
		ID:            "grf-1",
		Question:      "How often have you been troubled by the loss of a spouse, relative, or close friend?",
		Category:      CategoryGrief,
		CategoryLabel: "Grief & Loss",
		Audience:      senior,
		Options:       agreementOptions(),
	},
	{
		ID:            "cog-1",
		Question:      "How often do you have trouble remembering recent events or conversations?",
		Category:      CategoryCognitive,
		CategoryLabel: "Memory & Thinking",
		Audience:      senior,
		Options:       agreementOptions(),
	},
	{
		ID:            "cog-2",
		Question:      "How often do you lose track of appointments, medications, or the day of the week?",
		Category:      CategoryCognitive,
		CategoryLabel: "Memory & Thinking",
		Audience:      senior,
		Options:       agreementOptions(),
	},
	{
		ID:            "crs-1",
		Question:      "Over the past 2 weeks, how often have you had thoughts that you would be better off dead or of hurting yourself?",
		Category:      CategoryCrisis,
		CategoryLabel: "Safety",
		Audience:      all,
		Options:       frequencyOptions(),
	},
}

// DefaultBank returns a copy of the built-in question bank.
func DefaultBank() Bank {
	return defaultBank.Clone()
}

// Clone returns a deep copy of the bank.
func (b Bank) Clone() Bank {
	out := make(Bank, len(b))
	for i, it := range b {
		out[i] = it.clone()
	}
	return out
}

// FilterForAudience returns the items applicable to audience, in bank order.
// The returned items are copies; the bank itself is never modified.
func (b Bank) FilterForAudience(audience Audience) []Item {
	out := make([]Item, 0, len(b))
	for _, it := range b {
		if appliesTo(it.Audience, audience) {
			out = append(out, it.clone())
		}
	}
	return out
}

// Validate checks the structural invariants of a bank.
func (b Bank) Validate() error {
	seen := make(map[string]bool, len(b))
	for i, it := range b {
		if it.ID == "" {
			return fmt.Errorf("item %d: missing id", i)
		}
		if seen[it.ID] {
			return fmt.Errorf("item %s: duplicate id", it.ID)
		}
		seen[it.ID] = true
		if !it.Category.Valid() {
			return fmt.Errorf("item %s: unknown category %q", it.ID, it.Category)
		}
		if len(it.Options) < 2 {
			return fmt.Errorf("item %s: needs at least 2 options", it.ID)
		}
		if len(it.Audience) == 0 {
			return fmt.Errorf("item %s: no audience", it.ID)
		}
		for _, o := range it.Options {
			if o.Value < 0 {
				return fmt.Errorf("item %s: negative option value %d", it.ID, o.Value)
			}
		}
		if it.Category == CategoryCrisis {
			for _, rest := range b[i+1:] {
				if rest.Category != CategoryCrisis {
					return fmt.Errorf("item %s: crisis items must be asked last", it.ID)
				}
			}
		}
	}
	return nil
}
