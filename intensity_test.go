package gsf

import (
	"bytes"
	"testing"
)

// TestDecodeBrbIntensityTwelveBitPacking exercises the 12-bit intensity
// sample packing described by the spec: samples [0xABC, 0x123] are packed
// into the 3 bytes [0xAB, 0xC1, 0x23] and must decode back to [0xABC, 0x123].
func TestDecodeBrbIntensityTwelveBitPacking(t *testing.T) {
	buf := new(bytes.Buffer)

	// base header: Bits_per_sample (1 byte) + Applied_corrections (4 bytes)
	// + 4 reserved uint32 spares = 21 bytes.
	buf.WriteByte(12)
	buf.Write([]byte{0, 0, 0, 0}) // Applied_corrections
	buf.Write(make([]byte, 16))  // spare

	// per-beam header: Sample_count, Detect_sample, Start_range, 3 spares = 12 bytes
	buf.Write([]byte{0x00, 0x02}) // Sample_count = 2
	buf.Write([]byte{0x00, 0x00}) // Detect_sample
	buf.Write([]byte{0x00, 0x00}) // Start_range
	buf.Write(make([]byte, 6))    // spare

	// packed samples [0xABC, 0x123] -> [0xAB, 0xC1, 0x23]
	buf.Write([]byte{0xAB, 0xC1, 0x23})

	reader := bytes.NewReader(buf.Bytes())

	// SEABAT carries no imagery-specific scale/offset handling in
	// DecodeBrbIntensity, so the decoded samples stay unscaled and the
	// round trip can be checked directly against the packed values.
	intensity, _, err := DecodeBrbIntensity(reader, 1, SEABAT)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float64{0xABC, 0x123}
	if len(intensity.TimeSeries) != len(want) {
		t.Fatalf("got %d samples, want %d", len(intensity.TimeSeries), len(want))
	}
	for i := range want {
		if intensity.TimeSeries[i] != want[i] {
			t.Fatalf("sample %d: got %v, want %v", i, intensity.TimeSeries[i], want[i])
		}
	}
}

// TestDecodeBrbIntensityPerBeamSampleCounts exercises the bug where the
// 12-bit unpack loop previously bounded on the ping's beam count instead of
// each beam's own sample count. With 3 beams but a single sample each, the
// old bound let the loop believe a second sample followed and index one
// past the end of a 1-element destination slice.
func TestDecodeBrbIntensityPerBeamSampleCounts(t *testing.T) {
	buf := new(bytes.Buffer)

	buf.WriteByte(12)
	buf.Write([]byte{0, 0, 0, 0})
	buf.Write(make([]byte, 16))

	packedSample := func(sample uint16, trailer byte) []byte {
		hi := byte(sample >> 4)
		lo := byte(sample&0x0f) << 4
		return []byte{hi, lo, trailer}
	}

	// three beams, one 12-bit sample each
	beams := []uint16{0x001, 0x7FF, 0xABC}
	for _, s := range beams {
		buf.Write([]byte{0x00, 0x01}) // Sample_count = 1
		buf.Write([]byte{0x00, 0x00}) // Detect_sample
		buf.Write([]byte{0x00, 0x00}) // Start_range
		buf.Write(make([]byte, 6))    // spare
		buf.Write(packedSample(s, 0x00))
	}

	reader := bytes.NewReader(buf.Bytes())

	intensity, _, err := DecodeBrbIntensity(reader, 3, SEABAT)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float64{0x001, 0x7FF, 0xABC}
	if len(intensity.TimeSeries) != len(want) {
		t.Fatalf("got %d samples, want %d", len(intensity.TimeSeries), len(want))
	}
	for i := range want {
		if intensity.TimeSeries[i] != want[i] {
			t.Fatalf("sample %d: got %v, want %v", i, intensity.TimeSeries[i], want[i])
		}
	}
}
