package cart

// Action is a cart transition. The set of implementations is closed: only the
// types in this file satisfy it.
type Action interface {
	// Kind names the action for logs and metrics.
	Kind() string
	isAction()
}

// AddLine selects a service. An existing line with the same id gains one unit.
type AddLine struct {
	Candidate Candidate
}

// RemoveLine deletes the line with ID, if any.
type RemoveLine struct {
	ID string
}

// SetQuantity replaces a line's quantity. Zero or less removes the line.
type SetQuantity struct {
	ID       string
	Quantity int
}

// UpdateDetails merges Details into a line and re-prices it.
type UpdateDetails struct {
	ID      string
	Details Details
}

// Clear empties the cart.
type Clear struct{}

// LoadSnapshot replaces the whole state with one restored from storage.
type LoadSnapshot struct {
	State State
}

func (AddLine) Kind() string       { return "add_line" }
func (RemoveLine) Kind() string    { return "remove_line" }
func (SetQuantity) Kind() string   { return "set_quantity" }
func (UpdateDetails) Kind() string { return "update_details" }
func (Clear) Kind() string         { return "clear" }
func (LoadSnapshot) Kind() string  { return "load_snapshot" }

func (AddLine) isAction()       {}
func (RemoveLine) isAction()    {}
func (SetQuantity) isAction()   {}
func (UpdateDetails) isAction() {}
func (Clear) isAction()         {}
func (LoadSnapshot) isAction()  {}
