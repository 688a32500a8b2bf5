package gsf

import (
	"bytes"
	"encoding/binary"
)

// DecodeBeamFlagsArray decodes the beam flags array subrecord.
// The length of the returned slice is determined by the input
// number of beams.
// Each element indicates whether or not the beam contains usable data.
func DecodeBeamFlagsArray(reader *bytes.Reader, nbeams uint16) ([]uint8, int64) {
	var (
		data    []uint8
		n_bytes int64
	)

	data = make([]uint8, nbeams)
	n_bytes = 0

	_ = binary.Read(reader, binary.BigEndian, &data)
	n_bytes += 1 * int64(nbeams)

	return data, n_bytes
}

// qualityFlagMasks pulls the four 2-bit quality values out of a byte,
// MSB-first.
var qualityFlagMasks = [4]struct {
	mask  uint8
	shift uint8
}{
	{0xC0, 6},
	{0x30, 4},
	{0x0C, 2},
	{0x03, 0},
}

// DecodeQualityFlagsArray decodes the obsolete QUALITY_FLAGS subrecord,
// superseded by BEAM_FLAGS but still present in older files. Four 2-bit
// values are packed per byte, MSB-first, one value per beam.
func DecodeQualityFlagsArray(reader *bytes.Reader, nbeams uint16) ([]uint8, int64) {
	n_packed := (int(nbeams) + 3) / 4
	packed := make([]uint8, n_packed)
	_ = binary.Read(reader, binary.BigEndian, &packed)

	data := make([]uint8, nbeams)
	for i := 0; i < int(nbeams); i++ {
		b := packed[i/4]
		m := qualityFlagMasks[i%4]
		data[i] = (b & m.mask) >> m.shift
	}

	return data, int64(n_packed)
}
