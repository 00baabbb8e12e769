package catalog

// Unit represents the unit of measure a product is stocked in
type Unit string

const (
	UnitKilogram   Unit = "kg"
	UnitLiter      Unit = "liter"
	UnitCan        Unit = "can"
	UnitBox        Unit = "box"
	UnitPiece      Unit = "piece"
	UnitGram       Unit = "gram"
	UnitMilliliter Unit = "ml"
)

// AllUnits lists every valid unit of measure
func AllUnits() []Unit {
	return []Unit{
		UnitKilogram,
		UnitLiter,
		UnitCan,
		UnitBox,
		UnitPiece,
		UnitGram,
		UnitMilliliter,
	}
}

// IsValid returns true if the unit is a known unit of measure
func (u Unit) IsValid() bool {
	switch u {
	case UnitKilogram, UnitLiter, UnitCan, UnitBox, UnitPiece, UnitGram, UnitMilliliter:
		return true
	}
	return false
}

// String returns the unit as a string
func (u Unit) String() string {
	return string(u)
}
