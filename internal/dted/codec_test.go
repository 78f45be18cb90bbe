package dted

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeElevation(t *testing.T) {
	tests := []struct {
		name      string
		raw       uint16
		want      int32
		wantValid bool
	}{
		{
			name:      "reserved pattern is unknown, not -32767",
			raw:       0xffff,
			wantValid: false,
		},
		{
			name:      "zero",
			raw:       0x0000,
			want:      0,
			wantValid: true,
		},
		{
			name:      "maximum positive magnitude",
			raw:       0x7fff,
			want:      32767,
			wantValid: true,
		},
		{
			name:      "negative one",
			raw:       0x8001,
			want:      -1,
			wantValid: true,
		},
		{
			name:      "negative magnitude",
			raw:       0x8000 + 1234,
			want:      -1234,
			wantValid: true,
		},
		{
			name:      "sign bit alone is negative zero",
			raw:       0x8000,
			want:      0,
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeElevation(tt.raw)
			assert.Equal(t, tt.wantValid, got.Valid)
			if tt.wantValid {
				assert.Equal(t, tt.want, got.Meters)
			}
		})
	}
}

func TestDecodeElevationNegativeRange(t *testing.T) {
	// Every pattern with the sign bit set short of the reserved sentinel
	// decodes to the negated magnitude.
	for raw := uint32(0x8000); raw <= 0xfffe; raw++ {
		got := DecodeElevation(uint16(raw))
		if !got.Valid || got.Meters != -int32(raw-0x8000) {
			t.Fatalf("DecodeElevation(%#x) = %+v", raw, got)
		}
	}
}
