package assessment

// Category 评估维度
type Category string

const (
	CategoryDepression Category = "depression"
	CategoryAnxiety    Category = "anxiety"
	CategorySleep      Category = "sleep"
	CategorySocial     Category = "social"
	CategoryGrief      Category = "grief"
	CategoryCognitive  Category = "cognitive"
	CategoryCrisis     Category = "crisis"
)

// Categories lists every category in reporting order.
var Categories = []Category{
	CategoryDepression,
	CategoryAnxiety,
	CategorySleep,
	CategorySocial,
	CategoryGrief,
	CategoryCognitive,
	CategoryCrisis,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Severity 严重程度
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
)

// 严重程度阈值（百分比）
const (
	moderateThreshold = 30.0
	highThreshold     = 60.0
)

// SeverityFor classifies a category percentage: <30 low, [30,60) moderate, >=60 high.
func SeverityFor(percentage float64) Severity {
	switch {
	case percentage >= highThreshold:
		return SeverityHigh
	case percentage >= moderateThreshold:
		return SeverityModerate
	default:
		return SeverityLow
	}
}

// Audience 适用人群标签
type Audience string

const (
	AudienceAll    Audience = "all"
	AudienceSenior Audience = "senior"
)

// appliesTo reports whether a tag set admits the requested audience.
func appliesTo(tags []Audience, audience Audience) bool {
	for _, t := range tags {
		if t == AudienceAll || t == audience {
			return true
		}
	}
	return false
}

type Option struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// Item 一道评估题目
type Item struct {
	ID            string     `json:"id"`
	Question      string     `json:"question"`
	Category      Category   `json:"category"`
	CategoryLabel string     `json:"category_label"`
	Audience      []Audience `json:"audience"`
	Options       []Option   `json:"options"`
}

// HasOption reports whether value is one of the item's option values.
func (it Item) HasOption(value int) bool {
	for _, o := range it.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// clone copies the item so callers cannot write through to shared option or audience data.
func (it Item) clone() Item {
	it.Audience = append([]Audience(nil), it.Audience...)
	it.Options = append([]Option(nil), it.Options...)
	return it
}

func (it Item) maxOption() int {
	max := 0
	for _, o := range it.Options {
		if o.Value > max {
			max = o.Value
		}
	}
	return max
}

// Responses maps item id to the chosen option value.
type Responses map[string]int

// Resource 推荐资源
type Resource struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Category       string     `json:"category"`
	Description    string     `json:"description"`
	Link           string     `json:"link"`
	RecommendedFor []Category `json:"recommended_for"`
	Audience       []Audience `json:"audience"`
}

func (r Resource) clone() Resource {
	r.RecommendedFor = append([]Category(nil), r.RecommendedFor...)
	r.Audience = append([]Audience(nil), r.Audience...)
	return r
}

func (r Resource) addresses(concerns []Category) bool {
	for _, want := range r.RecommendedFor {
		for _, c := range concerns {
			if want == c {
				return true
			}
		}
	}
	return false
}

// CategoryResult 单一维度的汇总结果
type CategoryResult struct {
	Category           Category `json:"category"`
	CategoryLabel      string   `json:"category_label"`
	Score              int      `json:"score"`
	MaxScore           int      `json:"max_score"`
	SeverityPercentage float64  `json:"severity_percentage"`
	Severity           Severity `json:"severity"`
	Interpretation     string   `json:"interpretation"`
}

// Band 总体健康分档
type Band string

const (
	BandGood Band = "good"
	BandFair Band = "fair"
	BandLow  Band = "low"
)

// BandFor buckets a wellbeing score: >=70 good, >=40 fair, otherwise low.
func BandFor(overall int) Band {
	switch {
	case overall >= 70:
		return BandGood
	case overall >= 40:
		return BandFair
	default:
		return BandLow
	}
}

// Result 一次完整评估的结果，生成后不再修改
type Result struct {
	CategoryResults []CategoryResult `json:"category_results"`
	OverallScore    int              `json:"overall_score"`
	Band            Band             `json:"band"`
	CrisisFlagged   bool             `json:"crisis_flagged"`
}

// Category returns the result for c, if that category was answered.
func (r Result) Category(c Category) (CategoryResult, bool) {
	for _, cr := range r.CategoryResults {
		if cr.Category == c {
			return cr, true
		}
	}
	return CategoryResult{}, false
}
