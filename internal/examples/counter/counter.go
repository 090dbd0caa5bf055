package counter

import "fmt"

// Button ids understood by Counter.Apply.
const (
	IncID   = "btn_inc"
	DecID   = "btn_dec"
	ResetID = "btn_reset"
)

// Counter is the example's entire state.
type Counter struct {
	value int
}

func (c *Counter) Increment() { c.value++ }
func (c *Counter) Decrement() { c.value-- }
func (c *Counter) Reset()     { c.value = 0 }
func (c Counter) Value() int  { return c.value }

func (c Counter) Label() string { return fmt.Sprintf("Count: %d", c.value) }

// Apply runs the operation bound to a button id. Unknown ids change nothing.
func (c *Counter) Apply(id string) bool {
	switch id {
	case IncID:
		c.Increment()
	case DecID:
		c.Decrement()
	case ResetID:
		c.Reset()
	default:
		return false
	}
	return true
}
