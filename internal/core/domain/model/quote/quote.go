// Package quote models the "get a quote" requests that cover what the cart
// cannot price: custom solutions, logistics support and large consignments.
package quote

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"booking/internal/pkg/errs"
)

const (
	idPrefix      = "QT"
	idTimeDigits  = 8
	idRandomChars = 4
	base36        = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	submittedAtLayout = "2 January 2006, 03:04 PM"
)

var ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote or RestoreQuote constructor")

// Request is the quote form as submitted.
type Request struct {
	Name    string
	Email   string
	Phone   string
	Company string

	ServiceType string
	VehicleType string

	PickupLocation   string
	DeliveryLocation string
	PickupDate       string
	DeliveryDate     string

	CargoType  string
	Weight     string
	Dimensions string
	Value      string

	Insurance bool
	Packaging bool
	Loading   bool
	Tracking  bool

	SpecialRequirements string
	Urgency             string
}

// Validate requires the fields the quote form marks as mandatory.
func (r Request) Validate() error {
	return errors.Join(
		required("name", r.Name),
		required("email", r.Email),
		required("phone", r.Phone),
		required("serviceType", r.ServiceType),
		required("vehicleType", r.VehicleType),
		required("pickupLocation", r.PickupLocation),
		required("deliveryLocation", r.DeliveryLocation),
		required("pickupDate", r.PickupDate),
		required("cargoType", r.CargoType),
		required("weight", r.Weight),
	)
}

// Quote is a submitted request with its public reference.
type Quote struct {
	id          string
	request     Request
	submittedAt time.Time
	updated     bool

	isConstructed bool
}

// NewQuote registers a request. An empty existingID issues a fresh QT reference;
// a non-empty one re-submits an edited quote under the same reference.
func NewQuote(request Request, existingID string, at time.Time) (*Quote, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	q := &Quote{
		id:            existingID,
		request:       request,
		submittedAt:   at,
		updated:       existingID != "",
		isConstructed: true,
	}
	if q.id == "" {
		q.id = NewID(at)
	}
	return q, nil
}

// RestoreQuote rebuilds a quote read back from storage.
func RestoreQuote(id string, request Request, at time.Time, updated bool) (*Quote, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("quoteId")
	}
	return &Quote{id: id, request: request, submittedAt: at, updated: updated, isConstructed: true}, nil
}

// NewID builds "QT" + the last eight digits of the unix millisecond clock +
// four random base-36 characters.
func NewID(at time.Time) string {
	millis := strconv.FormatInt(at.UnixMilli(), 10)
	if len(millis) > idTimeDigits {
		millis = millis[len(millis)-idTimeDigits:]
	}

	var b strings.Builder
	b.WriteString(idPrefix)
	b.WriteString(millis)
	for range idRandomChars {
		b.WriteByte(base36[rand.IntN(len(base36))]) //nolint:gosec // reference numbers, not secrets
	}
	return b.String()
}

func (q *Quote) Validate() error {
	if q == nil || !q.isConstructed {
		return ErrQuoteIsNotConstructed
	}
	return nil
}

func (q *Quote) ID() string {
	return q.id
}

func (q *Quote) Request() Request {
	return q.request
}

func (q *Quote) SubmittedAt() time.Time {
	return q.submittedAt
}

func (q *Quote) IsUpdated() bool {
	return q.updated
}

// SubmittedAtLabel is the confirmation page wording, e.g.
// "16 October 2026, 09:30 AM" or "Updated on 16 October 2026, 09:30 AM".
func (q *Quote) SubmittedAtLabel() string {
	label := q.submittedAt.Format(submittedAtLayout)
	if q.updated {
		return "Updated on " + label
	}
	return label
}

// EstimatedCost is always "0": quotes are priced by the sales team.
func (q *Quote) EstimatedCost() string {
	return "0"
}

func required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
