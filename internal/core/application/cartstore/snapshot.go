package cartstore

import (
	"encoding/json"
	"errors"

	"booking/internal/core/domain/model/cart"
	"booking/internal/core/domain/model/kernel"
)

// StorageKey is the fixed key the cart snapshot lives under.
const StorageKey = "iyannar_cart_data"

var errSnapshotItemsNotArray = errors.New("cart snapshot items is not an array")

type snapshotDTO struct {
	Items      []LineRecord `json:"items"`
	TotalItems int          `json:"totalItems"`
	TotalPrice int          `json:"totalPrice"`
}

// LineRecord is the stored form of a cart line.
type LineRecord struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Price           string   `json:"price"`
	Slug            string   `json:"slug"`
	Quantity        int      `json:"quantity"`
	Features        []string `json:"features"`
	FromLocation    string   `json:"fromLocation,omitempty"`
	ToLocation      string   `json:"toLocation,omitempty"`
	VehicleType     string   `json:"vehicleType,omitempty"`
	CargoType       string   `json:"cargoType,omitempty"`
	Weight          *float64 `json:"weight,omitempty"`
	WeightUnit      string   `json:"weightUnit,omitempty"`
	Distance        *float64 `json:"distance,omitempty"`
	CalculatedPrice int      `json:"calculatedPrice"`
}

// EncodeSnapshot serializes the state in the storage format.
func EncodeSnapshot(s cart.State) (string, error) {
	lines := s.Lines()
	dto := snapshotDTO{
		Items:      make([]LineRecord, 0, len(lines)),
		TotalItems: s.TotalItems(),
		TotalPrice: s.TotalPrice(),
	}
	for _, l := range lines {
		dto.Items = append(dto.Items, NewLineRecord(l))
	}
	raw, err := json.Marshal(dto)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// DecodeSnapshot parses a stored snapshot. The second result reports whether
// the snapshot is worth adopting: it has items or a positive item count.
// A JSON object without an items array, or with a null one, decodes to an
// empty cart that is not adopted. Totals are always re-derived from the
// restored lines; lines with a quantity below one and repeated ids are dropped.
func DecodeSnapshot(raw string) (cart.State, bool, error) {
	var shape struct {
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal([]byte(raw), &shape); err != nil {
		return cart.State{}, false, err
	}
	if len(shape.Items) == 0 || string(shape.Items) == "null" {
		return cart.Empty(), false, nil
	}
	if shape.Items[0] != '[' {
		return cart.State{}, false, errSnapshotItemsNotArray
	}

	var dto snapshotDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		return cart.State{}, false, err
	}
	if len(dto.Items) == 0 && dto.TotalItems <= 0 {
		return cart.Empty(), false, nil
	}

	seen := make(map[string]struct{}, len(dto.Items))
	lines := make([]cart.Line, 0, len(dto.Items))
	for _, item := range dto.Items {
		if item.Quantity < 1 {
			continue
		}
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		lines = append(lines, item.Line())
	}
	return cart.NewState(lines), true, nil
}

// NewLineRecord converts a line to its stored form.
func NewLineRecord(l cart.Line) LineRecord {
	features := l.Features
	if features == nil {
		features = []string{}
	}
	return LineRecord{
		ID:              l.ID,
		Title:           l.Title,
		Description:     l.Description,
		Price:           l.PriceLabel,
		Slug:            l.ServiceSlug,
		Quantity:        l.Quantity,
		Features:        features,
		FromLocation:    l.FromLocation,
		ToLocation:      l.ToLocation,
		VehicleType:     l.VehicleType.String(),
		CargoType:       l.CargoType,
		Weight:          l.Weight,
		WeightUnit:      l.WeightUnit.String(),
		Distance:        l.DistanceKm,
		CalculatedPrice: l.CalculatedPrice,
	}
}

// Line converts the record back to a cart line.
func (d LineRecord) Line() cart.Line {
	return cart.Line{
		ID:              d.ID,
		Title:           d.Title,
		Description:     d.Description,
		PriceLabel:      d.Price,
		ServiceSlug:     d.Slug,
		Quantity:        d.Quantity,
		Features:        d.Features,
		FromLocation:    d.FromLocation,
		ToLocation:      d.ToLocation,
		VehicleType:     kernel.VehicleType(d.VehicleType),
		CargoType:       d.CargoType,
		Weight:          d.Weight,
		WeightUnit:      kernel.WeightUnit(d.WeightUnit),
		DistanceKm:      d.Distance,
		CalculatedPrice: d.CalculatedPrice,
	}
}
