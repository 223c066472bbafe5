package session

import (
	"context"
	"encoding/json"
	"time"

	"booking/internal/core/application/cartstore"
	"booking/internal/core/domain/model/booking"
	"booking/internal/core/domain/model/cart"
	"booking/internal/core/domain/model/quote"
	"booking/internal/core/ports"
	"booking/internal/pkg/errs"
)

// Keys of the records kept next to the cart snapshot in a visitor's bucket.
const (
	LastBookingKey = "lastBooking"
	LatestQuoteKey = "latestQuote"
)

type addressDTO struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
	Landmark string `json:"landmark,omitempty"`
}

type paymentDTO struct {
	Method string `json:"method"`
	Holder string `json:"holder,omitempty"`
}

type bookingDTO struct {
	OrderID    string                 `json:"orderId"`
	Items      []cartstore.LineRecord `json:"items"`
	TotalItems int                    `json:"totalItems"`
	TotalPrice int                    `json:"totalPrice"`
	Address    addressDTO             `json:"address"`
	Payment    paymentDTO             `json:"payment"`
	Timestamp  time.Time              `json:"timestamp"`
}

type quoteDTO struct {
	QuoteID             string    `json:"quoteId"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone"`
	Company             string    `json:"company,omitempty"`
	ServiceType         string    `json:"serviceType"`
	VehicleType         string    `json:"vehicleType"`
	PickupLocation      string    `json:"pickupLocation"`
	DeliveryLocation    string    `json:"deliveryLocation"`
	PickupDate          string    `json:"pickupDate"`
	DeliveryDate        string    `json:"deliveryDate,omitempty"`
	CargoType           string    `json:"cargoType"`
	Weight              string    `json:"weight"`
	Dimensions          string    `json:"dimensions,omitempty"`
	Value               string    `json:"value,omitempty"`
	Insurance           bool      `json:"insurance"`
	Packaging           bool      `json:"packaging"`
	Loading             bool      `json:"loading"`
	Tracking            bool      `json:"tracking"`
	SpecialRequirements string    `json:"specialRequirements,omitempty"`
	Urgency             string    `json:"urgency,omitempty"`
	SubmittedAt         time.Time `json:"submittedAt"`
	Updated             bool      `json:"updated"`
	EstimatedCost       string    `json:"estimatedCost"`
}

// bookingRepository keeps the visitor's last receipt under LastBookingKey.
type bookingRepository struct {
	kv ports.KeyValueStore
}

// SaveLast replaces the stored receipt. Payment details other than the
// method and the holder name are not persisted.
func (r *bookingRepository) SaveLast(ctx context.Context, b *booking.Booking) error {
	if err := b.Validate(); err != nil {
		return err
	}

	lines := b.Lines()
	dto := bookingDTO{
		OrderID:    b.OrderID(),
		Items:      make([]cartstore.LineRecord, 0, len(lines)),
		TotalItems: b.TotalItems(),
		TotalPrice: b.TotalPrice(),
		Address:    addressDTO(b.Address()),
		Payment: paymentDTO{
			Method: string(b.Payment().Method),
			Holder: b.Payment().Holder,
		},
		Timestamp: b.Timestamp(),
	}
	for _, l := range lines {
		dto.Items = append(dto.Items, cartstore.NewLineRecord(l))
	}

	raw, err := json.Marshal(dto)
	if err != nil {
		return err
	}
	return r.kv.Write(ctx, LastBookingKey, string(raw))
}

// GetLast returns errs.ErrObjectNotFound when no receipt was stored.
func (r *bookingRepository) GetLast(ctx context.Context) (*booking.Booking, error) {
	raw, found, err := r.kv.Read(ctx, LastBookingKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.NewObjectNotFoundError("booking", LastBookingKey)
	}

	var dto bookingDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(LastBookingKey, err)
	}

	lines := make([]cart.Line, 0, len(dto.Items))
	for _, item := range dto.Items {
		lines = append(lines, item.Line())
	}
	return booking.RestoreBooking(
		dto.OrderID,
		lines,
		booking.Address(dto.Address),
		booking.Payment{Method: booking.PaymentMethod(dto.Payment.Method), Holder: dto.Payment.Holder},
		dto.Timestamp,
	)
}

// quoteRepository keeps the visitor's latest quote request under LatestQuoteKey.
type quoteRepository struct {
	kv ports.KeyValueStore
}

// SaveLatest replaces the stored quote request.
func (r *quoteRepository) SaveLatest(ctx context.Context, q *quote.Quote) error {
	if err := q.Validate(); err != nil {
		return err
	}

	req := q.Request()
	dto := quoteDTO{
		QuoteID:             q.ID(),
		Name:                req.Name,
		Email:               req.Email,
		Phone:               req.Phone,
		Company:             req.Company,
		ServiceType:         req.ServiceType,
		VehicleType:         req.VehicleType,
		PickupLocation:      req.PickupLocation,
		DeliveryLocation:    req.DeliveryLocation,
		PickupDate:          req.PickupDate,
		DeliveryDate:        req.DeliveryDate,
		CargoType:           req.CargoType,
		Weight:              req.Weight,
		Dimensions:          req.Dimensions,
		Value:               req.Value,
		Insurance:           req.Insurance,
		Packaging:           req.Packaging,
		Loading:             req.Loading,
		Tracking:            req.Tracking,
		SpecialRequirements: req.SpecialRequirements,
		Urgency:             req.Urgency,
		SubmittedAt:         q.SubmittedAt(),
		Updated:             q.IsUpdated(),
		EstimatedCost:       q.EstimatedCost(),
	}

	raw, err := json.Marshal(dto)
	if err != nil {
		return err
	}
	return r.kv.Write(ctx, LatestQuoteKey, string(raw))
}

// GetLatest returns errs.ErrObjectNotFound when no quote was stored.
func (r *quoteRepository) GetLatest(ctx context.Context) (*quote.Quote, error) {
	raw, found, err := r.kv.Read(ctx, LatestQuoteKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.NewObjectNotFoundError("quote", LatestQuoteKey)
	}

	var dto quoteDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(LatestQuoteKey, err)
	}

	return quote.RestoreQuote(dto.QuoteID, quote.Request{
		Name:                dto.Name,
		Email:               dto.Email,
		Phone:               dto.Phone,
		Company:             dto.Company,
		ServiceType:         dto.ServiceType,
		VehicleType:         dto.VehicleType,
		PickupLocation:      dto.PickupLocation,
		DeliveryLocation:    dto.DeliveryLocation,
		PickupDate:          dto.PickupDate,
		DeliveryDate:        dto.DeliveryDate,
		CargoType:           dto.CargoType,
		Weight:              dto.Weight,
		Dimensions:          dto.Dimensions,
		Value:               dto.Value,
		Insurance:           dto.Insurance,
		Packaging:           dto.Packaging,
		Loading:             dto.Loading,
		Tracking:            dto.Tracking,
		SpecialRequirements: dto.SpecialRequirements,
		Urgency:             dto.Urgency,
	}, dto.SubmittedAt, dto.Updated)
}
