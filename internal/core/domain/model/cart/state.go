package cart

import "math"

// State is the cart aggregate. Totals are computed once when the state is built
// and cached for reads; there is no way to set them independently of the lines.
type State struct {
	lines      []Line
	totalItems int
	totalPrice int
}

// Empty returns the cart with no lines and zero totals.
func Empty() State {
	return State{lines: []Line{}}
}

// NewState builds a state from lines, deriving both totals.
// The lines are copied; later changes to the argument do not leak in.
// Totals saturate at math.MaxInt.
func NewState(lines []Line) State {
	s := State{lines: make([]Line, 0, len(lines))}
	for _, l := range lines {
		s.lines = append(s.lines, l.clone())
		s.totalItems = saturatingAdd(s.totalItems, l.Quantity)
		s.totalPrice = saturatingAdd(s.totalPrice, l.Subtotal())
	}
	return s
}

// saturatingAdd adds two non-negative amounts, clamping at math.MaxInt.
func saturatingAdd(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// Lines returns a copy of the lines in insertion order.
func (s State) Lines() []Line {
	out := make([]Line, len(s.lines))
	for i, l := range s.lines {
		out[i] = l.clone()
	}
	return out
}

// Line looks up a line by its id.
func (s State) Line(id string) (Line, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.lines[i].clone(), true
	}
	return Line{}, false
}

func (s State) Len() int {
	return len(s.lines)
}

func (s State) TotalItems() int {
	return s.totalItems
}

func (s State) TotalPrice() int {
	return s.totalPrice
}

func (s State) IsEmpty() bool {
	return len(s.lines) == 0
}

func (s State) indexOf(id string) int {
	for i, l := range s.lines {
		if l.ID == id {
			return i
		}
	}
	return -1
}
