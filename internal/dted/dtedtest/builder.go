// Package dtedtest assembles DTED Level-2 byte streams for tests.
package dtedtest

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// File describes a synthetic tile. Zero-valued fields fall back to
// well-formed defaults; the override maps corrupt individual records.
type File struct {
	Magic            string // 3 bytes, default "UHL"
	Version          byte   // default '1'
	LonOrigin        string // 8 bytes, default "0104500E"
	LatOrigin        string // 8 bytes, default "0471500N"
	LonInterval      string // 4 bytes, default "0010"
	LatInterval      string // 4 bytes, default "0010"
	VerticalAccuracy string // 4 bytes, default "NA  "
	MultipleAccuracy byte   // default '0'

	// Rows[i] holds record i's raw samples; all rows must share a length.
	Rows [][]uint16

	Sentinel map[int]byte   // per-record sentinel override
	LonIndex map[int]uint16 // per-record longitude index override
	LatIndex map[int]uint16 // per-record latitude index override
	Checksum map[int]int32  // per-record absolute checksum override
}

// New builds a well-formed file around the given sample rows.
func New(rows [][]uint16) *File {
	return &File{Rows: rows}
}

// Uniform returns lines×points rows all holding the same raw sample.
func Uniform(lines, points int, value uint16) [][]uint16 {
	rows := make([][]uint16, lines)
	for i := range rows {
		row := make([]uint16, points)
		for j := range row {
			row[j] = value
		}
		rows[i] = row
	}
	return rows
}

// Bytes assembles the full byte stream: UHL header, blank DSI and ACC
// blocks, then one data record per row.
func (f *File) Bytes() []byte {
	var b bytes.Buffer

	b.WriteString(stringOr(f.Magic, "UHL"))
	b.WriteByte(byteOr(f.Version, '1'))
	b.WriteString(stringOr(f.LonOrigin, "0104500E"))
	b.WriteString(stringOr(f.LatOrigin, "0471500N"))
	b.WriteString(stringOr(f.LonInterval, "0010"))
	b.WriteString(stringOr(f.LatInterval, "0010"))
	b.WriteString(stringOr(f.VerticalAccuracy, "NA  "))
	b.WriteString("UNC")                          // classification code
	b.WriteString("            ")                 // reference, 12 bytes
	fmt.Fprintf(&b, "%04d", len(f.Rows))          // longitude line count
	fmt.Fprintf(&b, "%04d", len(f.Rows[0]))       // latitude point count
	b.WriteByte(byteOr(f.MultipleAccuracy, '0'))  // multiple accuracy flag
	b.Write(bytes.Repeat([]byte{' '}, 24))        // reserved
	b.Write(make([]byte, 648+2700))               // DSI + ACC blocks

	for i, row := range f.Rows {
		b.WriteByte(byteOr(f.Sentinel[i], 0xaa))

		var seq [4]byte
		binary.BigEndian.PutUint32(seq[:], uint32(i))
		b.Write(seq[1:]) // 24-bit sequence number

		lonIdx := uint16(i)
		if v, ok := f.LonIndex[i]; ok {
			lonIdx = v
		}
		var idx [2]byte
		binary.BigEndian.PutUint16(idx[:], lonIdx)
		b.Write(idx[:])
		binary.BigEndian.PutUint16(idx[:], f.LatIndex[i])
		b.Write(idx[:])

		var sum int32
		for _, v := range row {
			var sample [2]byte
			binary.BigEndian.PutUint16(sample[:], v)
			b.Write(sample[:])
			sum += int32(int16(v))
		}

		if v, ok := f.Checksum[i]; ok {
			sum = v
		}
		var cs [4]byte
		binary.BigEndian.PutUint32(cs[:], uint32(sum))
		b.Write(cs[:])
	}

	return b.Bytes()
}

func stringOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func byteOr(v, fallback byte) byte {
	if v == 0 {
		return fallback
	}
	return v
}
