package kernel

// WeightUnit is the unit the customer entered the cargo weight in.
type WeightUnit string

const (
	Kilograms WeightUnit = "kg"
	Tons      WeightUnit = "tons"
)

// IsTons reports whether weights in this unit use the per-ton surcharge.
// Every other value, including empty, is treated as kilograms.
func (u WeightUnit) IsTons() bool {
	return u == Tons
}

func (u WeightUnit) IsKnown() bool {
	return u == Kilograms || u == Tons
}

func (u WeightUnit) String() string {
	return string(u)
}
