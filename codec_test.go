package gsf

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestDecodeQualityFlagsArrayUnpacksMsbFirst(t *testing.T) {
	// 0b11100100 -> [3, 2, 1, 0]
	buf := bytes.NewReader([]byte{0b11100100})
	data, n := DecodeQualityFlagsArray(buf, 4)

	want := []uint8{3, 2, 1, 0}
	if n != 1 {
		t.Fatalf("expected 1 packed byte consumed, got %d", n)
	}
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, data[i], want[i])
		}
	}
}

func TestDecodeQualityFlagsArrayNotMultipleOfFour(t *testing.T) {
	// 5 beams packed into 2 bytes; only the second byte's top 2-bit slot is used.
	buf := bytes.NewReader([]byte{0b01101100, 0b10000000})
	data, _ := DecodeQualityFlagsArray(buf, 5)

	want := []uint8{1, 2, 3, 0, 2}
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, data[i], want[i])
		}
	}
}

func TestDecodeBeamFlagsArrayOneBytePerBeam(t *testing.T) {
	raw := []byte{0x00, 0x01, 0x7f}
	buf := bytes.NewReader(raw)
	data, n := DecodeBeamFlagsArray(buf, 3)

	if n != 3 {
		t.Fatalf("expected 3 bytes consumed, got %d", n)
	}
	for i := range raw {
		if data[i] != raw[i] {
			t.Fatalf("index %d: got %d, want %d", i, data[i], raw[i])
		}
	}
}

func TestDecodeSubRecArrayUnsignedRoundTrip(t *testing.T) {
	// depths [1000, 2000, 3000] raw units with multiplier=100, offset=0
	// decode as value = raw/multiplier - offset
	raw := []uint16{1000, 2000, 3000}
	buf := new(bytes.Buffer)
	_ = binary.Write(buf, binary.BigEndian, raw)

	reader := bytes.NewReader(buf.Bytes())
	sf := ScaleFactor{ScaleOffset: ScaleOffset{Scale: 100, Offset: 0}}

	sr := &SubRecord{Id: DEPTH}
	got, err := sr.DecodeSubRecArray(reader, 3, sf, BYTES_PER_BEAM_TWO, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float64{10.0, 20.0, 30.0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecodeSubRecArrayFourByteWidth(t *testing.T) {
	// same beams, but the field size is 4 bytes (e.g. beams=200, payload=800)
	raw := []uint32{100000, 200000}
	buf := new(bytes.Buffer)
	_ = binary.Write(buf, binary.BigEndian, raw)

	reader := bytes.NewReader(buf.Bytes())
	sf := ScaleFactor{ScaleOffset: ScaleOffset{Scale: 1000, Offset: 0}}

	sr := &SubRecord{Id: DEPTH}
	got, err := sr.DecodeSubRecArray(reader, 2, sf, BYTES_PER_BEAM_FOUR, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float64{100.0, 200.0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecodeSubRecArrayShortBufferReturnsErrShortBuffer(t *testing.T) {
	// 3 beams requested, two-byte width, but only 4 of the 6 required bytes present
	reader := bytes.NewReader([]byte{0x00, 0x01, 0x00, 0x02})
	sf := ScaleFactor{ScaleOffset: ScaleOffset{Scale: 1, Offset: 0}}

	sr := &SubRecord{Id: DEPTH}
	_, err := sr.DecodeSubRecArray(reader, 3, sf, BYTES_PER_BEAM_TWO, false)
	if !errors.Is(err, ErrShortBuffer) {
		t.Fatalf("expected ErrShortBuffer, got %v", err)
	}
}

func TestDecodeByteArrayShortBufferReturnsErrShortBuffer(t *testing.T) {
	reader := bytes.NewReader([]byte{0x01, 0x02})
	sf := ScaleFactor{ScaleOffset: ScaleOffset{Scale: 1, Offset: 0}}

	sr := &SubRecord{Id: DEPTH}
	_, err := sr.DecodeByteArray(reader, 5, sf)
	if !errors.Is(err, ErrShortBuffer) {
		t.Fatalf("expected ErrShortBuffer, got %v", err)
	}
}

func scaleFactorBlock(entries [][3]int32) []byte {
	buf := new(bytes.Buffer)
	_ = binary.Write(buf, binary.BigEndian, int32(len(entries)))
	for _, e := range entries {
		_ = binary.Write(buf, binary.BigEndian, e[0])
		_ = binary.Write(buf, binary.BigEndian, e[1])
		_ = binary.Write(buf, binary.BigEndian, e[2])
	}
	return buf.Bytes()
}

func TestScaleFactorsRecBadSubrecordIdZero(t *testing.T) {
	packed := int32(0) << 24 // subid = 0, invalid
	raw := scaleFactorBlock([][3]int32{{packed, 100, 0}})
	reader := bytes.NewReader(raw)

	_, _, err := scale_factors_rec(reader)
	if !errors.Is(err, ErrBadScaleFactor) {
		t.Fatalf("expected ErrBadScaleFactor, got %v", err)
	}
}

func TestScaleFactorsRecBadSubrecordIdThirtyTwo(t *testing.T) {
	packed := int32(32) << 24 // subid = 32, out of [1,31]
	raw := scaleFactorBlock([][3]int32{{packed, 100, 0}})
	reader := bytes.NewReader(raw)

	_, _, err := scale_factors_rec(reader)
	if !errors.Is(err, ErrBadScaleFactor) {
		t.Fatalf("expected ErrBadScaleFactor, got %v", err)
	}
}

func TestScaleFactorsRecTooManyArraySubrecords(t *testing.T) {
	buf := new(bytes.Buffer)
	_ = binary.Write(buf, binary.BigEndian, int32(32)) // > 31 is illegal
	reader := bytes.NewReader(buf.Bytes())

	_, _, err := scale_factors_rec(reader)
	if !errors.Is(err, ErrTooManyArraySubrecords) {
		t.Fatalf("expected ErrTooManyArraySubrecords, got %v", err)
	}
}

func TestInferFieldSizeRecoversTwoByteWidth(t *testing.T) {
	// 200 beams, payload = 400 bytes -> infer field size 2.
	// Build a buffer containing the (bogus) array payload followed by a
	// legal-looking next subrecord header: id=ACROSS_TRACK (2), size = a
	// whole multiple of beams.
	beams := uint16(200)
	payload := make([]byte, 400)

	nextHdr := make([]byte, 4)
	nextSize := uint32(400) // also a multiple of 200
	tagged := (uint32(ACROSS_TRACK) << 24) | (nextSize & 0x00FFFFFF)
	binary.BigEndian.PutUint32(nextHdr, tagged)

	buf := append(payload, nextHdr...)
	reader := bytes.NewReader(buf)

	got, err := inferFieldSize(reader, 400, beams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2 {
		t.Fatalf("got field size %d, want 2", got)
	}

	// reader position must be restored
	if pos, _ := reader.Seek(0, 1); pos != 0 {
		t.Fatalf("reader position was not restored, at %d", pos)
	}
}

func TestInferFieldSizeRecoversFourByteWidth(t *testing.T) {
	beams := uint16(200)
	payload := make([]byte, 800)

	nextHdr := make([]byte, 4)
	nextSize := uint32(800)
	tagged := (uint32(DEPTH) << 24) | (nextSize & 0x00FFFFFF)
	binary.BigEndian.PutUint32(nextHdr, tagged)

	buf := append(payload, nextHdr...)
	reader := bytes.NewReader(buf)

	got, err := inferFieldSize(reader, 800, beams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 4 {
		t.Fatalf("got field size %d, want 4", got)
	}
}

func TestInferFieldSizeZeroBeamsIsInvalid(t *testing.T) {
	reader := bytes.NewReader(make([]byte, 16))
	if _, err := inferFieldSize(reader, 16, 0); err != ErrInvalidBeamCount {
		t.Fatalf("expected ErrInvalidBeamCount, got %v", err)
	}
}

func TestDecodeCommentTrimsTrailingNulAndParsesTimestamp(t *testing.T) {
	buf := new(bytes.Buffer)
	_ = binary.Write(buf, binary.BigEndian, int32(1000)) // seconds
	_ = binary.Write(buf, binary.BigEndian, int32(0))    // nanoseconds
	_ = binary.Write(buf, binary.BigEndian, int32(0))    // comment length (unused by decoder)
	buf.WriteString("depth check\x00\x00")

	c := DecodeComment(buf.Bytes())
	if c.Value != "depth check" {
		t.Fatalf("got %q, want %q", c.Value, "depth check")
	}
	if c.Timestamp.Unix() != 1000 {
		t.Fatalf("got unix time %d, want 1000", c.Timestamp.Unix())
	}
}

func TestDecodeRecordHdr(t *testing.T) {
	buf := new(bytes.Buffer)
	_ = binary.Write(buf, binary.BigEndian, uint32(128))             // data size
	_ = binary.Write(buf, binary.BigEndian, uint32(SWATH_BATHYMETRY_PING)) // id, no checksum bit

	reader := bytes.NewReader(buf.Bytes())
	hdr := DecodeRecordHdr(reader)

	if hdr.Datasize != 128 {
		t.Fatalf("got datasize %d, want 128", hdr.Datasize)
	}
	if hdr.Id != SWATH_BATHYMETRY_PING {
		t.Fatalf("got id %d, want %d", hdr.Id, SWATH_BATHYMETRY_PING)
	}
	if hdr.Checksum_flag {
		t.Fatalf("expected no checksum flag set")
	}
}

func TestDecodeRecordHdrChecksumBit(t *testing.T) {
	buf := new(bytes.Buffer)
	_ = binary.Write(buf, binary.BigEndian, uint32(64))
	_ = binary.Write(buf, binary.BigEndian, uint32(HEADER)|0x80000000)

	reader := bytes.NewReader(buf.Bytes())
	hdr := DecodeRecordHdr(reader)

	if !hdr.Checksum_flag {
		t.Fatalf("expected checksum flag set")
	}
	if hdr.Id != HEADER {
		t.Fatalf("got id %d, want %d", hdr.Id, HEADER)
	}
}
