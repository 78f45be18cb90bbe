package dted

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	// Fixed metadata blocks between the UHL header and the data records.
	// Their contents are not interpreted.
	dsiBlockSize = 648
	accBlockSize = 2700

	recordSentinel = 0xaa
	naPlaceholder  = "NA  "
)

// Load opens and fully decodes a tile file. Open errors (missing file,
// permissions) are returned unchanged.
func Load(path string) (*Tile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Error().Err(err).Str("tile", path).Msg("Error closing tile file")
		}
	}()

	return Decode(f)
}

// Decode parses a DTED Level-2 byte stream into a Tile. The stream is
// consumed strictly sequentially; any validation failure aborts the whole
// load and no partial grid is returned.
func Decode(r io.Reader) (*Tile, error) {
	c := &cursor{r: bufio.NewReader(r)}

	magic, err := c.bytes(3)
	if err != nil {
		return nil, err
	}
	if string(magic) != "UHL" {
		return nil, NewFormatError("bad magic")
	}
	version, err := c.bytes(1)
	if err != nil {
		return nil, err
	}
	if version[0] != '1' {
		return nil, NewFormatError("bad version")
	}

	t := &Tile{}
	if t.LongitudeOrigin, err = c.ascii(8); err != nil {
		return nil, err
	}
	if t.LatitudeOrigin, err = c.ascii(8); err != nil {
		return nil, err
	}

	// Intervals are stored in tenths of arc-seconds.
	lonIval, err := c.intField(4)
	if err != nil {
		return nil, err
	}
	t.LongitudeInterval = float64(lonIval) / 10
	latIval, err := c.intField(4)
	if err != nil {
		return nil, err
	}
	t.LatitudeInterval = float64(latIval) / 10

	vacc, err := c.ascii(4)
	if err != nil {
		return nil, err
	}
	if vacc != naPlaceholder {
		v, err := strconv.Atoi(strings.TrimSpace(vacc))
		if err != nil {
			return nil, NewFormatError("bad vertical accuracy field")
		}
		t.VerticalAccuracy = &v
	}

	if t.Classification, err = c.ascii(3); err != nil {
		return nil, err
	}
	if t.Reference, err = c.ascii(12); err != nil {
		return nil, err
	}

	if t.NumLongitudeLines, err = c.intField(4); err != nil {
		return nil, err
	}
	if t.NumLatitudePoints, err = c.intField(4); err != nil {
		return nil, err
	}
	if t.NumLongitudeLines <= 0 || t.NumLatitudePoints <= 0 {
		return nil, NewFormatError("non-positive grid dimensions")
	}
	if t.MultipleAccuracy, err = c.intField(1); err != nil {
		return nil, err
	}

	// Reserved tail of the UHL, then the DSI and ACC blocks.
	if err := c.skip(24 + dsiBlockSize + accBlockSize); err != nil {
		return nil, err
	}

	grid := make([][]Elevation, 0, t.NumLongitudeLines)
	raw := make([]byte, 2*t.NumLatitudePoints)
	for i := 0; i < t.NumLongitudeLines; i++ {
		prologue, err := c.bytes(8)
		if err != nil {
			return nil, err
		}
		if prologue[0] != recordSentinel {
			return nil, NewRecordError("bad record sentinel", i, recordSentinel, int64(prologue[0]))
		}
		// prologue[1:4] is the 24-bit sequence number; nothing beyond the
		// per-record indices below is validated against it.
		lonIdx := binary.BigEndian.Uint16(prologue[4:6])
		if int(lonIdx) != i {
			return nil, NewRecordError("unexpected longitude number", i, int64(i), int64(lonIdx))
		}
		latIdx := binary.BigEndian.Uint16(prologue[6:8])
		if latIdx != 0 {
			return nil, NewRecordError("latitude count not zero", i, 0, int64(latIdx))
		}

		if _, err := io.ReadFull(c.r, raw); err != nil {
			return nil, err
		}
		declared, err := c.bytes(4)
		if err != nil {
			return nil, err
		}
		want := int32(binary.BigEndian.Uint32(declared))

		// The checksum sums the samples as ordinary two's-complement
		// int16 values. Consumption below uses the sign-magnitude
		// decoding instead; the two passes must stay separate.
		var sum int32
		for off := 0; off < len(raw); off += 2 {
			sum += int32(int16(binary.BigEndian.Uint16(raw[off:])))
		}
		if sum != want {
			return nil, NewRecordError("checksum mismatch", i, int64(want), int64(sum))
		}

		row := make([]Elevation, t.NumLatitudePoints)
		for j := range row {
			row[j] = DecodeElevation(binary.BigEndian.Uint16(raw[2*j:]))
		}
		grid = append(grid, row)
	}
	t.grid = grid

	log.Trace().
		Int("longitude_lines", t.NumLongitudeLines).
		Int("latitude_points", t.NumLatitudePoints).
		Msg("Decoded tile")

	return t, nil
}

// cursor reads fixed-width fields off a byte stream, front to back, with
// no backtracking.
type cursor struct {
	r io.Reader
}

func (c *cursor) bytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(c.r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (c *cursor) ascii(n int) (string, error) {
	buf, err := c.bytes(n)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func (c *cursor) intField(n int) (int, error) {
	s, err := c.ascii(n)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, NewFormatError("bad numeric header field " + strconv.Quote(s))
	}
	return v, nil
}

func (c *cursor) skip(n int64) error {
	_, err := io.CopyN(io.Discard, c.r, n)
	return err
}
