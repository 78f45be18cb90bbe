package dted

// unknownElevation is the reserved sample pattern meaning "no data at this
// post". It must never surface as a numeric -32767.
const unknownElevation = 0xffff

// Elevation is a single decoded grid post. Unknown posts carry Valid ==
// false; Meters is only meaningful when Valid is true.
type Elevation struct {
	Meters int32
	Valid  bool
}

// DecodeElevation decodes a raw big-endian sample in the DTED
// sign-magnitude encoding: bit 15 is the sign, bits 0-14 the magnitude.
// This is not two's complement.
func DecodeElevation(raw uint16) Elevation {
	if raw == unknownElevation {
		return Elevation{}
	}
	if raw >= 0x8000 {
		return Elevation{Meters: -int32(raw - 0x8000), Valid: true}
	}
	return Elevation{Meters: int32(raw), Valid: true}
}
