package dted

// Tile is a fully decoded DTED Level-2 tile. It is built once by Decode
// and read-only afterwards.
type Tile struct {
	LongitudeOrigin string
	LatitudeOrigin  string

	// Grid spacing in arc-seconds (the UHL stores tenths).
	LongitudeInterval float64
	LatitudeInterval  float64

	// VerticalAccuracy is nil when the UHL field holds the "NA"
	// placeholder.
	VerticalAccuracy *int

	Classification string
	Reference      string

	NumLongitudeLines int
	NumLatitudePoints int
	MultipleAccuracy  int

	grid [][]Elevation
}

// At returns the elevation at the given longitude line and latitude point.
// Indices outside the decoded dimensions return an IndexError rather than
// panicking.
func (t *Tile) At(lonIdx, latIdx int) (Elevation, error) {
	if lonIdx < 0 || lonIdx >= t.NumLongitudeLines {
		return Elevation{}, &IndexError{Axis: "longitude", Index: lonIdx, Size: t.NumLongitudeLines}
	}
	if latIdx < 0 || latIdx >= t.NumLatitudePoints {
		return Elevation{}, &IndexError{Axis: "latitude", Index: latIdx, Size: t.NumLatitudePoints}
	}
	return t.grid[lonIdx][latIdx], nil
}
