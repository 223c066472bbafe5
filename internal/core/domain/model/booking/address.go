package booking

import (
	"errors"
	"strings"

	"booking/internal/pkg/errs"
)

// DefaultState is preselected on the checkout form.
const DefaultState = "Tamil Nadu"

// Address is the customer contact and delivery address of a booking.
type Address struct {
	FullName string
	Phone    string
	Email    string
	Address  string
	City     string
	State    string
	Pincode  string
	Landmark string
}

// Validate requires every field the checkout form marks as mandatory.
// State and landmark are optional.
func (a Address) Validate() error {
	return errors.Join(
		required("fullName", a.FullName),
		required("phone", a.Phone),
		required("email", a.Email),
		required("address", a.Address),
		required("city", a.City),
		required("pincode", a.Pincode),
	)
}

// withDefaults fills the state when it was left empty.
func (a Address) withDefaults() Address {
	if strings.TrimSpace(a.State) == "" {
		a.State = DefaultState
	}
	return a
}

func required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
