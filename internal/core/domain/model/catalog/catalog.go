// Package catalog lists the bookable services shown on the services pages.
package catalog

import (
	"slices"

	"booking/internal/core/domain/model/cart"
)

// Service is a catalogue entry. Its ID doubles as the cart line key, so a
// visitor holds at most one line per service.
type Service struct {
	ID          string
	Title       string
	Description string
	PriceLabel  string
	Slug        string
	Features    []string
}

var services = []Service{
	{
		ID:          cart.SlugCargoTransport,
		Title:       "Cargo Transport",
		Description: "Reliable cargo transportation across Tamil Nadu and neighboring states with real-time tracking.",
		PriceLabel:  "Starting from ₹5/km",
		Slug:        cart.SlugCargoTransport,
		Features: []string{
			"Local & Interstate delivery",
			"Real-time GPS tracking",
			"Insured cargo protection",
			"Timely delivery guarantee",
			"Multiple vehicle options",
			"24/7 customer support",
		},
	},
	{
		ID:          cart.SlugLogisticsSupport,
		Title:       "Logistics Support",
		Description: "Complete logistics solutions for businesses with warehouse management and supply chain optimization.",
		PriceLabel:  cart.CustomPricingLabel,
		Slug:        cart.SlugLogisticsSupport,
		Features: []string{
			"Warehouse management",
			"Last-mile delivery",
			"Supply chain optimization",
			"Inventory management",
			"Pick & pack services",
			"Distribution network",
		},
	},
	{
		ID:          cart.SlugVehicleHire,
		Title:       "Vehicle Hire",
		Description: "Rent vehicles for your transportation needs with professional drivers and flexible periods.",
		PriceLabel:  "₹1,200/day onwards",
		Slug:        cart.SlugVehicleHire,
		Features: []string{
			"Trucks, vans & lorries",
			"Professional drivers",
			"Flexible rental periods",
			"Well-maintained fleet",
			"Fuel included options",
			"Door-to-door service",
		},
	},
	{
		ID:          cart.SlugCustomSolutions,
		Title:       "Custom Solutions",
		Description: "Tailored transport solutions for specific industry requirements with dedicated support.",
		PriceLabel:  "Quote based",
		Slug:        cart.SlugCustomSolutions,
		Features: []string{
			"Industry-specific solutions",
			"Contract logistics",
			"Specialized handling",
			"Dedicated support team",
			"Temperature controlled",
			"Hazmat certified",
		},
	},
}

// Default returns the published services in display order.
func Default() []Service {
	out := make([]Service, len(services))
	for i, s := range services {
		out[i] = s.clone()
	}
	return out
}

// Find returns the service with the given id.
func Find(id string) (Service, bool) {
	i := slices.IndexFunc(services, func(s Service) bool { return s.ID == id })
	if i < 0 {
		return Service{}, false
	}
	return services[i].clone(), true
}

// Candidate turns the service into a cart candidate without trip details.
// Callers attach the trip through services.BookingDetails.
func (s Service) Candidate() cart.Candidate {
	return cart.Candidate{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		PriceLabel:  s.PriceLabel,
		ServiceSlug: s.Slug,
		Features:    slices.Clone(s.Features),
	}
}

func (s Service) clone() Service {
	s.Features = slices.Clone(s.Features)
	return s
}
