package kernel

// VehicleType is the vehicle class picked on the booking form.
type VehicleType string

const (
	MiniTruck   VehicleType = "mini-truck"
	SmallTruck  VehicleType = "small-truck"
	MediumTruck VehicleType = "medium-truck"
	LargeTruck  VehicleType = "large-truck"
	Container   VehicleType = "container"
	Trailer     VehicleType = "trailer"
)

type vehicleSpec struct {
	label      string
	multiplier float64
}

var vehicleSpecs = map[VehicleType]vehicleSpec{
	MiniTruck:   {label: "Mini Truck (Up to 1 Ton)", multiplier: 1.0},
	SmallTruck:  {label: "Small Truck (1-3 Tons)", multiplier: 1.2},
	MediumTruck: {label: "Medium Truck (3-7 Tons)", multiplier: 1.5},
	LargeTruck:  {label: "Large Truck (7-15 Tons)", multiplier: 2.0},
	Container:   {label: "Container (20-40 ft)", multiplier: 2.5},
	Trailer:     {label: "Trailer (Heavy Cargo)", multiplier: 3.0},
}

// VehicleTypes lists the selectable vehicle classes in display order.
func VehicleTypes() []VehicleType {
	return []VehicleType{MiniTruck, SmallTruck, MediumTruck, LargeTruck, Container, Trailer}
}

// Multiplier returns the fare multiplier for the vehicle class.
// Unknown or empty types price like a mini truck (1.0).
func (v VehicleType) Multiplier() float64 {
	if spec, ok := vehicleSpecs[v]; ok {
		return spec.multiplier
	}
	return 1.0
}

// Label returns the human readable name, or the raw value for unknown types.
func (v VehicleType) Label() string {
	if spec, ok := vehicleSpecs[v]; ok {
		return spec.label
	}
	return string(v)
}

func (v VehicleType) IsKnown() bool {
	_, ok := vehicleSpecs[v]
	return ok
}

func (v VehicleType) String() string {
	return string(v)
}
