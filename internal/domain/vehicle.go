package domain

// VehicleType selects which of the two zone-rate fees applies to an order.
type VehicleType string

const (
	VehicleStandard VehicleType = "standard"
	VehicleHeavy    VehicleType = "heavy"
)

// UnitOfMeasure is the unit a material's quantity is denominated in.
type UnitOfMeasure string

const (
	UnitTon       UnitOfMeasure = "ton"
	UnitPound     UnitOfMeasure = "pound"
	UnitCubicYard UnitOfMeasure = "cubic_yard"
)

// MaterialCategory groups bulk materials with shared handling rules.
type MaterialCategory string

const (
	CategoryMulch   MaterialCategory = "mulch"
	CategorySoil    MaterialCategory = "soil"
	CategoryCompost MaterialCategory = "compost"
	CategoryGravel  MaterialCategory = "gravel"
	CategoryStone   MaterialCategory = "stone"
	CategorySand    MaterialCategory = "sand"
)

// LineItem is one order line: a material and how much of it.
type LineItem struct {
	Category MaterialCategory
	Unit     UnitOfMeasure
	Quantity float64
}

// Heavy-vehicle thresholds. A single line item over any one of these
// forces the heavy vehicle for the whole order.
const (
	maxStandardTons    = 7.0
	maxStandardMulchYd = 12.0
	maxStandardSoilYd  = 10.0
	poundsPerTon       = 2000.0
)

// ClassifyVehicle scans order lines and picks the vehicle. The scan
// short-circuits on the first item that crosses a threshold; quantities
// are not aggregated across lines.
func ClassifyVehicle(items []LineItem) VehicleType {
	for _, item := range items {
		if itemNeedsHeavy(item) {
			return VehicleHeavy
		}
	}
	return VehicleStandard
}

func itemNeedsHeavy(item LineItem) bool {
	switch item.Unit {
	case UnitTon:
		return item.Quantity > maxStandardTons
	case UnitPound:
		return item.Quantity/poundsPerTon > maxStandardTons
	case UnitCubicYard:
		switch item.Category {
		case CategoryMulch:
			return item.Quantity > maxStandardMulchYd
		case CategorySoil, CategoryCompost:
			return item.Quantity > maxStandardSoilYd
		}
	}
	return false
}
