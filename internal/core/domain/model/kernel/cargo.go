package kernel

import "slices"

var cargoTypes = []string{
	"General Cargo",
	"Fragile Items",
	"Heavy Machinery",
	"Bulk Cargo",
	"Perishable Goods",
	"Hazardous Materials",
	"Electronics",
	"Furniture",
	"Construction Materials",
	"Automotive Parts",
}

// CargoTypes returns the cargo categories offered on the booking form.
func CargoTypes() []string {
	return slices.Clone(cargoTypes)
}

// IsKnownCargoType reports whether name is one of CargoTypes.
func IsKnownCargoType(name string) bool {
	return slices.Contains(cargoTypes, name)
}
