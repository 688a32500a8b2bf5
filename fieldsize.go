package gsf

import (
	"bytes"
	"encoding/binary"
)

// legalFieldSizes are the only byte-widths a scale-factored array subrecord
// field is ever encoded in.
var legalFieldSizes = [...]uint32{1, 2, 4}

func isLegalFieldSize(v uint32) bool {
	for _, s := range legalFieldSizes {
		if v == s {
			return true
		}
	}
	return false
}

func isLegalArraySubRecordID(id SubRecordID) bool {
	return id >= 1 && id <= MAX_BEAM_ARRAY_SUBRECORD_ID
}

// inferFieldSize recovers the per-beam byte width of an array subrecord
// when neither the scale-factor table nor a straight division of the
// subrecord payload by the beam count yields a legal width ({1, 2, 4}
// bytes). This happens in legacy files that never wrote a size hint.
//
// It tries each legal width in turn, reads the subrecord header that would
// follow a payload of that width, and accepts the first guess that makes
// that tag look like a genuine array subrecord whose declared size is
// itself a whole multiple of the beam count. Only the header immediately
// after the payload is probed; headers further ahead are not examined.
// The outer loop repeats the same probes up to three times with a
// tighter bound on the bytes remaining, so it finds nothing the first pass
// did not. subrecord_size is not used. The reader's position is left
// exactly as found.
func inferFieldSize(reader *bytes.Reader, subrecord_size uint32, beams uint16) (uint32, error) {
	if beams == 0 {
		return 0, ErrInvalidBeamCount
	}

	start, err := reader.Seek(0, 1)
	if err != nil {
		return 0, err
	}
	defer reader.Seek(start, 0)

	remaining := int64(reader.Len())

	for step := 0; step < 3; step++ {
		for _, guess := range legalFieldSizes {
			assumed := int64(guess) * int64(beams)
			if assumed <= 0 || assumed > remaining {
				continue
			}

			if _, err := reader.Seek(start+assumed, 0); err != nil {
				continue
			}

			var raw int32
			if err := binary.Read(reader, binary.BigEndian, &raw); err != nil {
				continue
			}

			next_id := SubRecordID((uint32(raw) & 0xFF000000) >> 24)
			next_size := uint32(raw) & 0x00FFFFFF

			if isLegalArraySubRecordID(next_id) && next_size%uint32(beams) == 0 {
				return guess, nil
			}
		}
		// shrink the bound on the bytes remaining by one beam's worth;
		// the probe offsets themselves do not change between passes
		remaining -= int64(beams)
		if remaining <= 0 {
			break
		}
	}

	return 0, ErrBadScaleFactor
}
