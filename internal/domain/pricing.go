package domain

// FeeBreakdown itemizes how a delivery fee was assembled for display
// and invoicing. Total always equals BaseFee + DistanceFee + ZoneFee.
type FeeBreakdown struct {
	BaseFee     float64
	DistanceFee float64
	ZoneFee     float64
	Total       float64
}

// DeliveryFeeResult is the typed answer every fee computation returns,
// fully populated even when every remote tier failed. Zone, distance
// and duration are zero when the degraded path had no way to know them.
type DeliveryFeeResult struct {
	Fee             float64
	Zone            int
	DistanceMiles   float64
	DurationMinutes float64
	VehicleType     VehicleType
	Breakdown       FeeBreakdown
}

// TaxResult is the typed answer of a tax computation. IsExempt short
// circuits remote lookups entirely.
type TaxResult struct {
	Subtotal     float64
	TaxAmount    float64
	TaxRate      float64
	Total        float64
	IsExempt     bool
	ExemptReason string
	Jurisdiction string
}
