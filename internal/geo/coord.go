package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Axis identifies which geographic axis a coordinate lies on.
type Axis int

const (
	Latitude Axis = iota
	Longitude
)

func (a Axis) String() string {
	if a == Latitude {
		return "latitude"
	}
	return "longitude"
}

// Hemisphere is the trailing letter of a coordinate token. N/S belong to
// the latitude axis, E/W to the longitude axis.
type Hemisphere byte

const (
	North Hemisphere = 'N'
	South Hemisphere = 'S'
	East  Hemisphere = 'E'
	West  Hemisphere = 'W'
)

// FormatError reports a coordinate token that does not parse.
type FormatError struct {
	Token   string
	Message string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("geo: bad coordinate %q: %s", e.Token, e.Message)
}

// Coord is a geographic coordinate in the packed D.MMSS form: the integer
// part is degrees, the first two fractional digits minutes, the next two
// seconds. A Coord only exists fully validated; construct one with Parse.
type Coord struct {
	axis Axis
	hemi Hemisphere
	raw  float64
}

// Parse reads a token of the form D.MMSSH, e.g. "47.2516N" for
// 47°25'16" north.
func Parse(token string) (Coord, error) {
	if len(token) < 2 {
		return Coord{}, &FormatError{Token: token, Message: "too short"}
	}

	var axis Axis
	hemi := Hemisphere(strings.ToUpper(token[len(token)-1:])[0])
	switch hemi {
	case North, South:
		axis = Latitude
	case East, West:
		axis = Longitude
	default:
		return Coord{}, &FormatError{Token: token, Message: "hemisphere must be one of N/S/E/W"}
	}

	raw, err := strconv.ParseFloat(token[:len(token)-1], 64)
	if err != nil {
		return Coord{}, &FormatError{Token: token, Message: "not a decimal coordinate"}
	}
	if raw < 0 {
		return Coord{}, &FormatError{Token: token, Message: "sign belongs in the hemisphere letter"}
	}

	// The fractional digit pairs are minutes and seconds and must stay
	// within their sexagesimal ranges.
	minutes, seconds := packedFields(raw)
	if minutes > 59 {
		return Coord{}, &FormatError{Token: token, Message: "minutes out of range"}
	}
	if seconds > 59 {
		return Coord{}, &FormatError{Token: token, Message: "seconds out of range"}
	}

	return Coord{axis: axis, hemi: hemi, raw: raw}, nil
}

func (c Coord) Axis() Axis { return c.axis }

func (c Coord) Hemisphere() Hemisphere { return c.hemi }

func (c Coord) String() string {
	return strconv.FormatFloat(c.raw, 'f', -1, 64) + string(c.hemi)
}

// DecimalDegrees unpacks the D.MMSS fixed-point value into true decimal
// degrees by accumulating arc-seconds and dividing out at the end.
func (c Coord) DecimalDegrees() float64 {
	x := c.raw
	acc := math.Trunc(x)
	for i := 0; i < 2; i++ {
		acc *= 60
		x *= 100
		acc += math.Mod(math.Trunc(x), 100)
	}
	return acc / 3600
}

// SubIndex is the coordinate's position within its 15-arcminute cell,
// used directly as a grid axis index. Indices ascend for N/E and descend
// for S/W, mirrored about the cell boundary.
func (c Coord) SubIndex() int {
	minutes, seconds := packedFields(c.raw)
	x0 := minutes % 15
	x1 := seconds

	if c.hemi == North || c.hemi == East {
		return 60*x0 + x1
	}
	return 900 - 60*x0 - x1
}

// TileFragment is the filename component naming the tile cell containing
// this coordinate: the hemisphere letter followed by the cell corner,
// zero-padded to 6 digits for latitude and 7 for longitude.
func (c Coord) TileFragment() string {
	x := int(math.Trunc(c.raw * 100))

	if c.hemi == North || c.hemi == East {
		x = (x - x%100%15) * 100
	} else {
		x = (x - x%100%15 + 15) * 100
	}

	if c.axis == Latitude {
		return fmt.Sprintf("%c%06d", c.hemi, x)
	}
	return fmt.Sprintf("%c%07d", c.hemi, x)
}

// packedFields extracts the minutes and seconds digit pairs from the
// D.MMSS value. The multiplications are staged by 100 so that values
// like 47.1500, which sit just under their decimal reading in binary
// floating point, still yield the written digits.
func packedFields(raw float64) (minutes, seconds int) {
	m100 := 100 * raw
	minutes = int(math.Trunc(m100)) % 100
	seconds = int(math.Trunc(100*m100)) % 100
	return minutes, seconds
}
