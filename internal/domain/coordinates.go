package domain

// Coordinates is an immutable geographic point (longitude, latitude),
// attached to an Address when the caller already geocoded it.
type Coordinates struct {
	Lon float64
	Lat float64
}

// CoordsToList returns [lon, lat] in the order the remote distance
// service expects.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }
