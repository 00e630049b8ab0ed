package domain

import "math"

// Zone is one discrete distance bracket of the delivery rate table.
// Brackets are contiguous: MinMiles of zone n is MaxMiles of zone n-1
// plus 0.01, and standard fees strictly increase with the zone number.
type Zone struct {
	ZoneNumber  int
	MinMiles    float64
	MaxMiles    float64
	StandardFee float64
}

// ZoneRate is the rating result for a single distance: the matched (or
// extrapolated) zone plus both candidate fees. Which fee applies is the
// vehicle classifier's decision, not the rating engine's.
type ZoneRate struct {
	Zone        int
	StandardFee float64
	HeavyFee    float64
}

// zoneTable is the fixed local rate table. Beyond the last bracket the
// fee is extrapolated in 5-mile / $15 steps, so the table never needs
// to grow with the delivery radius.
var zoneTable = []Zone{
	{ZoneNumber: 1, MinMiles: 0.00, MaxMiles: 15.00, StandardFee: 95},
	{ZoneNumber: 2, MinMiles: 15.01, MaxMiles: 20.00, StandardFee: 110},
	{ZoneNumber: 3, MinMiles: 20.01, MaxMiles: 25.00, StandardFee: 125},
	{ZoneNumber: 4, MinMiles: 25.01, MaxMiles: 30.00, StandardFee: 140},
	{ZoneNumber: 5, MinMiles: 30.01, MaxMiles: 35.00, StandardFee: 155},
	{ZoneNumber: 6, MinMiles: 35.01, MaxMiles: 40.00, StandardFee: 170},
	{ZoneNumber: 7, MinMiles: 40.01, MaxMiles: 45.00, StandardFee: 185},
	{ZoneNumber: 8, MinMiles: 45.01, MaxMiles: 50.00, StandardFee: 200},
	{ZoneNumber: 9, MinMiles: 50.01, MaxMiles: 55.00, StandardFee: 215},
	{ZoneNumber: 10, MinMiles: 55.01, MaxMiles: 60.00, StandardFee: 230},
	{ZoneNumber: 11, MinMiles: 60.01, MaxMiles: 65.00, StandardFee: 245},
	{ZoneNumber: 12, MinMiles: 65.01, MaxMiles: 67.00, StandardFee: 260},
}

const (
	lastZoneNumber   = 12
	lastZoneMaxMiles = 67.00
	lastZoneFee      = 260.0
	extraZoneMiles   = 5.0
	extraZoneFee     = 15.0
)

// Zones returns a copy of the rate table for display and diagnostics.
func Zones() []Zone {
	out := make([]Zone, len(zoneTable))
	copy(out, zoneTable)
	return out
}

// Rate maps a travel distance to its pricing zone and both candidate
// fees. Pure and total for distanceMiles >= 0; callers are responsible
// for rejecting negative or non-finite input upstream.
func Rate(distanceMiles float64) ZoneRate {
	return ZoneRate{
		Zone:        zoneFor(distanceMiles),
		StandardFee: StandardFee(distanceMiles),
		HeavyFee:    HeavyFee(distanceMiles),
	}
}

func zoneFor(distanceMiles float64) int {
	for _, z := range zoneTable {
		if distanceMiles <= z.MaxMiles {
			return z.ZoneNumber
		}
	}
	return lastZoneNumber + zonesBeyond(distanceMiles)
}

// StandardFee returns the standard-vehicle fee for a distance, reading
// the zone table inside it and extrapolating past the last bracket.
func StandardFee(distanceMiles float64) float64 {
	for _, z := range zoneTable {
		if distanceMiles <= z.MaxMiles {
			return z.StandardFee
		}
	}
	return lastZoneFee + float64(zonesBeyond(distanceMiles))*extraZoneFee
}

// HeavyFee models the heavy vehicle's round-trip time-based cost: two
// legs at 45 mph plus a half hour of loading, billed at $85/h with a
// $30 callout, floored at $115. Continuous in distance, unlike the
// bracketed standard fee.
func HeavyFee(distanceMiles float64) float64 {
	fee := ((distanceMiles*2)/45+0.5)*85 + 30
	return math.Max(fee, 115)
}

func zonesBeyond(distanceMiles float64) int {
	return int(math.Ceil((distanceMiles - lastZoneMaxMiles) / extraZoneMiles))
}
