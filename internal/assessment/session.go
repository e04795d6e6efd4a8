package assessment

// Engine holds the static data shared by all sessions. It is read-only after construction.
type Engine struct {
	bank    Bank
	catalog Catalog
}

func NewEngine(bank Bank, catalog Catalog) *Engine {
	return &Engine{bank: bank.Clone(), catalog: catalog.Clone()}
}

// DefaultEngine uses the built-in question bank and resource catalog.
func DefaultEngine() *Engine {
	return NewEngine(DefaultBank(), DefaultCatalog())
}

// Bank and Catalog return copies; the engine's own data cannot be modified through them.
func (e *Engine) Bank() Bank       { return e.bank.Clone() }
func (e *Engine) Catalog() Catalog { return e.catalog.Clone() }

// StartSession begins a new assessment for audience.
func (e *Engine) StartSession(audience Audience) *Session {
	return &Session{
		audience:  audience,
		catalog:   e.catalog,
		collector: NewCollector(e.bank.FilterForAudience(audience)),
	}
}

// Session is one user's walk through the assessment. Sessions share nothing mutable.
type Session struct {
	audience  Audience
	catalog   Catalog
	collector *Collector
	result    *Result
}

func (s *Session) Audience() Audience { return s.audience }

func (s *Session) State() State { return s.collector.State() }

func (s *Session) Progress() (answered, total int) { return s.collector.Progress() }

// CurrentQuestion returns the next unanswered item or ErrSequenceComplete.
func (s *Session) CurrentQuestion() (Item, error) {
	return s.collector.CurrentItem()
}

// Answer records value for the current question.
func (s *Session) Answer(value int) (State, error) {
	state, err := s.collector.SubmitAnswer(value)
	if err != nil {
		return state, err
	}
	if state == StateComplete {
		res, err := Compute(s.collector.Responses(), s.collector.Items())
		if err != nil {
			return state, err
		}
		s.result = &res
	}
	return state, nil
}

// Result returns the computed result once every question has been answered.
func (s *Session) Result() (Result, error) {
	if s.State() != StateComplete {
		return Result{}, ErrNotComplete
	}
	if s.result == nil {
		// 过滤后没有题目时不会产生任何答案
		return Result{}, ErrEmptyResponseSet
	}
	res := *s.result
	res.CategoryResults = append([]CategoryResult(nil), s.result.CategoryResults...)
	return res, nil
}

// Recommendations returns the resources matched to the session's result.
func (s *Session) Recommendations() ([]Resource, error) {
	res, err := s.Result()
	if err != nil {
		return nil, err
	}
	return Recommend(res, s.audience, s.catalog), nil
}

// Reset discards answers and any result, returning to the first question.
func (s *Session) Reset() {
	s.collector.Reset()
	s.result = nil
}
