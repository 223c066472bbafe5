package http

import (
	"booking/internal/core/application/usecases/queries"
	"booking/internal/core/domain/model/booking"
	"booking/internal/core/domain/model/cart"
	"booking/internal/core/domain/model/catalog"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/quote"
	"booking/internal/core/domain/services"
	"booking/internal/generated/servers"
)

// Request mapping: generated models to domain values.

func bookingDetailsToDomain(r servers.BookingDetails) services.BookingDetails {
	return services.BookingDetails{
		FromLocation:        r.FromLocation,
		ToLocation:          r.ToLocation,
		VehicleType:         kernel.VehicleType(r.VehicleType),
		CargoType:           r.CargoType,
		Weight:              r.Weight,
		WeightUnit:          kernel.WeightUnit(deref(r.WeightUnit)),
		DistanceKm:          r.Distance,
		SpecialInstructions: deref(r.SpecialInstructions),
	}
}

// estimateToDomain reads the booking form while it is being filled in, so
// every field but the service may be missing.
func estimateToDomain(r servers.EstimateRequest) services.BookingDetails {
	return services.BookingDetails{
		FromLocation: deref(r.FromLocation),
		ToLocation:   deref(r.ToLocation),
		VehicleType:  kernel.VehicleType(deref(r.VehicleType)),
		CargoType:    deref(r.CargoType),
		Weight:       deref(r.Weight),
		WeightUnit:   kernel.WeightUnit(deref(r.WeightUnit)),
		DistanceKm:   deref(r.Distance),
	}
}

// lineDetailsToDomain builds a partial update; absent fields keep their value.
func lineDetailsToDomain(r servers.UpdateLineDetailsRequest) cart.Details {
	d := cart.Details{
		Title:        r.Title,
		Description:  r.Description,
		PriceLabel:   r.Price,
		ServiceSlug:  r.Slug,
		FromLocation: r.FromLocation,
		ToLocation:   r.ToLocation,
		CargoType:    r.CargoType,
		Weight:       r.Weight,
		DistanceKm:   r.Distance,
	}
	if r.Features != nil {
		d.Features = *r.Features
	}
	if r.VehicleType != nil {
		v := kernel.VehicleType(*r.VehicleType)
		d.VehicleType = &v
	}
	if r.WeightUnit != nil {
		u := kernel.WeightUnit(*r.WeightUnit)
		d.WeightUnit = &u
	}
	return d
}

func checkoutToDomain(r servers.CheckoutRequest) (booking.Address, booking.PaymentForm) {
	address := booking.Address{
		FullName: r.Address.FullName,
		Phone:    r.Address.Phone,
		Email:    r.Address.Email,
		Address:  r.Address.Address,
		City:     r.Address.City,
		State:    deref(r.Address.State),
		Pincode:  r.Address.Pincode,
		Landmark: deref(r.Address.Landmark),
	}
	payment := booking.PaymentForm{
		Method:         booking.PaymentMethod(r.Payment.Method),
		CardNumber:     deref(r.Payment.CardNumber),
		ExpiryDate:     deref(r.Payment.ExpiryDate),
		CVV:            deref(r.Payment.Cvv),
		CardholderName: deref(r.Payment.CardholderName),
		BankName:       deref(r.Payment.BankName),
		AccountNumber:  deref(r.Payment.AccountNumber),
		IFSCCode:       deref(r.Payment.IfscCode),
	}
	return address, payment
}

func quoteToDomain(r servers.QuoteRequest) quote.Request {
	return quote.Request{
		Name:                r.Name,
		Email:               r.Email,
		Phone:               r.Phone,
		Company:             deref(r.Company),
		ServiceType:         r.ServiceType,
		VehicleType:         r.VehicleType,
		PickupLocation:      r.PickupLocation,
		DeliveryLocation:    r.DeliveryLocation,
		PickupDate:          r.PickupDate,
		DeliveryDate:        deref(r.DeliveryDate),
		CargoType:           r.CargoType,
		Weight:              r.Weight,
		Dimensions:          deref(r.Dimensions),
		Value:               deref(r.Value),
		Insurance:           deref(r.Insurance),
		Packaging:           deref(r.Packaging),
		Loading:             deref(r.Loading),
		Tracking:            deref(r.Tracking),
		SpecialRequirements: deref(r.SpecialRequirements),
		Urgency:             deref(r.Urgency),
	}
}

// Response mapping: domain values to generated models.

func toCartLines(lines []cart.Line) []servers.CartLine {
	out := make([]servers.CartLine, 0, len(lines))
	for _, l := range lines {
		features := l.Features
		if features == nil {
			features = []string{}
		}
		out = append(out, servers.CartLine{
			Id:              l.ID,
			Title:           l.Title,
			Description:     l.Description,
			Price:           l.PriceLabel,
			Slug:            l.ServiceSlug,
			Quantity:        l.Quantity,
			Features:        features,
			FromLocation:    optional(l.FromLocation),
			ToLocation:      optional(l.ToLocation),
			VehicleType:     optional(l.VehicleType.String()),
			CargoType:       optional(l.CargoType),
			Weight:          l.Weight,
			WeightUnit:      optional(l.WeightUnit.String()),
			Distance:        l.DistanceKm,
			CalculatedPrice: l.CalculatedPrice,
			Subtotal:        l.Subtotal(),
		})
	}
	return out
}

func toCart(s cart.State) servers.Cart {
	return servers.Cart{
		Items:      toCartLines(s.Lines()),
		TotalItems: s.TotalItems(),
		TotalPrice: s.TotalPrice(),
	}
}

func toServices(list []catalog.Service) []servers.Service {
	out := make([]servers.Service, 0, len(list))
	for _, s := range list {
		out = append(out, servers.Service{
			Id:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			Price:       s.PriceLabel,
			Slug:        s.Slug,
			Features:    s.Features,
		})
	}
	return out
}

func toEstimate(r queries.EstimatePriceQueryResponse) servers.Estimate {
	return servers.Estimate{
		ServiceId:  r.ServiceID,
		Title:      r.Title,
		Price:      r.PriceLabel,
		Estimate:   r.Estimate,
		NeedsQuote: r.NeedsQuote,
	}
}

func toBooking(b *booking.Booking) servers.Booking {
	a := b.Address()
	return servers.Booking{
		OrderId:    b.OrderID(),
		Items:      toCartLines(b.Lines()),
		TotalItems: b.TotalItems(),
		TotalPrice: b.TotalPrice(),
		NeedsQuote: b.NeedsQuote(),
		Address: servers.Address{
			FullName: a.FullName,
			Phone:    a.Phone,
			Email:    a.Email,
			Address:  a.Address,
			City:     a.City,
			State:    optional(a.State),
			Pincode:  a.Pincode,
			Landmark: optional(a.Landmark),
		},
		PaymentMethod: servers.PaymentMethod(b.Payment().Method),
		Timestamp:     b.Timestamp(),
	}
}

func toQuote(q *quote.Quote) servers.Quote {
	req := q.Request()
	return servers.Quote{
		QuoteId:          q.ID(),
		Name:             req.Name,
		Email:            req.Email,
		ServiceType:      req.ServiceType,
		VehicleType:      req.VehicleType,
		PickupLocation:   req.PickupLocation,
		DeliveryLocation: req.DeliveryLocation,
		PickupDate:       req.PickupDate,
		Urgency:          optional(req.Urgency),
		SubmittedAt:      q.SubmittedAt(),
		SubmittedLabel:   q.SubmittedAtLabel(),
		Updated:          q.IsUpdated(),
		EstimatedCost:    q.EstimatedCost(),
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// optional maps an empty string to an absent property.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
