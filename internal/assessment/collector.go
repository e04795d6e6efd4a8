package assessment

import "fmt"

// State 答题进度状态
type State string

const (
	StateCollecting State = "collecting"
	StateComplete   State = "complete"
)

// Collector walks a filtered item sequence one answer at a time.
// A Collector belongs to one session and is not safe for concurrent use.
type Collector struct {
	items     []Item
	cursor    int
	responses Responses
}

func NewCollector(items []Item) *Collector {
	return &Collector{
		items:     items,
		responses: make(Responses, len(items)),
	}
}

func (c *Collector) State() State {
	if c.cursor >= len(c.items) {
		return StateComplete
	}
	return StateCollecting
}

// CurrentItem returns the item awaiting an answer.
func (c *Collector) CurrentItem() (Item, error) {
	if c.State() == StateComplete {
		return Item{}, ErrSequenceComplete
	}
	return c.items[c.cursor], nil
}

// SubmitAnswer records value for the current item and advances the cursor.
func (c *Collector) SubmitAnswer(value int) (State, error) {
	item, err := c.CurrentItem()
	if err != nil {
		return StateComplete, err
	}
	if !item.HasOption(value) {
		return StateCollecting, fmt.Errorf("%w: %d is not an option for %s", ErrInvalidAnswer, value, item.ID)
	}
	c.responses[item.ID] = value
	c.cursor++
	return c.State(), nil
}

// Progress returns how many items have been answered out of the total.
func (c *Collector) Progress() (answered, total int) {
	return c.cursor, len(c.items)
}

// Responses returns a copy of the recorded answers.
func (c *Collector) Responses() Responses {
	out := make(Responses, len(c.responses))
	for id, v := range c.responses {
		out[id] = v
	}
	return out
}

func (c *Collector) Items() []Item {
	return c.items
}

// Reset discards all answers and returns to the first item.
func (c *Collector) Reset() {
	c.cursor = 0
	c.responses = make(Responses, len(c.items))
}
