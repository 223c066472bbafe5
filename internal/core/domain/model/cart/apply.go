package cart

import "math"

// Apply returns the state that results from applying a to s.
// It never mutates s and never fails: unknown line ids make RemoveLine,
// SetQuantity and UpdateDetails no-ops.
func Apply(s State, a Action) State {
	switch a := a.(type) {
	case AddLine:
		return addLine(s, a.Candidate)
	case RemoveLine:
		return removeLine(s, a.ID)
	case SetQuantity:
		if a.Quantity <= 0 {
			return removeLine(s, a.ID)
		}
		return setQuantity(s, a.ID, a.Quantity)
	case UpdateDetails:
		return updateDetails(s, a.ID, a.Details)
	case Clear:
		return Empty()
	case LoadSnapshot:
		return NewState(a.State.lines)
	default:
		return s
	}
}

func addLine(s State, c Candidate) State {
	lines := s.Lines()
	if i := s.indexOf(c.ID); i >= 0 {
		// Same service again: count it, keep the price from the first add.
		if lines[i].Quantity < math.MaxInt {
			lines[i].Quantity++
		}
		return NewState(lines)
	}

	line := c.Line(1)
	line.CalculatedPrice = Price(line)
	return NewState(append(lines, line))
}

func removeLine(s State, id string) State {
	if s.indexOf(id) < 0 {
		return s
	}
	lines := make([]Line, 0, len(s.lines))
	for _, l := range s.lines {
		if l.ID != id {
			lines = append(lines, l)
		}
	}
	return NewState(lines)
}

func setQuantity(s State, id string, quantity int) State {
	i := s.indexOf(id)
	if i < 0 {
		return s
	}
	lines := s.Lines()
	lines[i].Quantity = quantity
	return NewState(lines)
}

func updateDetails(s State, id string, d Details) State {
	i := s.indexOf(id)
	if i < 0 {
		return s
	}
	lines := s.Lines()
	merged := d.mergeInto(lines[i])
	merged.CalculatedPrice = Price(merged)
	lines[i] = merged
	return NewState(lines)
}
