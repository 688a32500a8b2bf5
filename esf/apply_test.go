package esf

import "testing"

func newTestESF(edits []Edit, mode Mode, version int) *ESF {
	e := &ESF{Mode: mode, Version: version, Edits: edits}
	if len(e.Edits) > 1 {
		MergeSort(e.Edits, Compare)
	}
	return e
}

func TestApplyLastWriterWins(t *testing.T) {
	e := newTestESF([]Edit{
		{TimeD: 100.0, Beam: 5, Action: ActionFlag},
		{TimeD: 100.0, Beam: 5, Action: ActionUnflag},
		{TimeD: 200.0, Beam: 7, Action: ActionZero},
	}, ModeExplicit, 3)

	beamflags := make([]byte, 8)
	if err := e.Apply(100.0, 0, beamflags); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if beamflags[5] != byte(FlagNone) {
		t.Fatalf("beam 5: got flag %#x, want NONE", beamflags[5])
	}
	if beamflags[7] != byte(FlagNone) {
		t.Fatalf("beam 7 should be untouched by an edit outside this ping's time window, got %#x", beamflags[7])
	}
}

func TestApplyNullBeamNeverChanges(t *testing.T) {
	e := newTestESF([]Edit{
		{TimeD: 50.0, Beam: 3, Action: ActionFlag},
	}, ModeExplicit, 3)

	beamflags := []byte{0, 0, 0, byte(FlagNull)}
	if err := e.Apply(50.0, 0, beamflags); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if beamflags[3] != byte(FlagNull) {
		t.Fatalf("null beam flag changed: got %#x", beamflags[3])
	}
	if e.Edits[0].Use < UseSkippedNullBeam {
		t.Fatalf("expected Use to record the skipped-null outcome, got %d", e.Edits[0].Use)
	}
}

func TestApplyMultiplicityOffset(t *testing.T) {
	e := newTestESF([]Edit{
		{TimeD: 100.0, Beam: 5 + MultiplicityFactor, Action: ActionFlag},
	}, ModeExplicit, 3)

	firstPing := make([]byte, 8)
	if err := e.Apply(100.0, 0, firstPing); err != nil {
		t.Fatalf("Apply (mult 0): %v", err)
	}
	if firstPing[5] != byte(FlagNone) {
		t.Fatalf("first ping (multiplicity 0) should be unaffected, got %#x", firstPing[5])
	}

	secondPing := make([]byte, 8)
	if err := e.Apply(100.0, 1, secondPing); err != nil {
		t.Fatalf("Apply (mult 1): %v", err)
	}
	if secondPing[5] != byte(FlagManual) {
		t.Fatalf("second ping (multiplicity 1) should be flagged, got %#x", secondPing[5])
	}
}

func TestApplyIdempotent(t *testing.T) {
	e := newTestESF([]Edit{
		{TimeD: 100.0, Beam: 2, Action: ActionFlag},
	}, ModeExplicit, 3)

	beamflags := make([]byte, 4)
	if err := e.Apply(100.0, 0, beamflags); err != nil {
		t.Fatalf("first Apply: %v", err)
	}
	first := append([]byte(nil), beamflags...)

	e.startNextSearch = 0
	if err := e.Apply(100.0, 0, beamflags); err != nil {
		t.Fatalf("second Apply: %v", err)
	}
	for i := range first {
		if first[i] != beamflags[i] {
			t.Fatalf("beam %d changed on second apply: %#x -> %#x", i, first[i], beamflags[i])
		}
	}
}

func TestApplyImplicitModes(t *testing.T) {
	good := newTestESF(nil, ModeImplicitGood, 3)
	beamflags := []byte{byte(FlagManual), byte(FlagNull)}
	if err := good.Apply(10.0, 0, beamflags); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	for i, f := range beamflags {
		if f != byte(FlagNone) {
			t.Fatalf("ModeImplicitGood: beam %d got %#x, want NONE", i, f)
		}
	}

	null := newTestESF(nil, ModeImplicitNull, 3)
	beamflags2 := []byte{0, 0}
	if err := null.Apply(10.0, 0, beamflags2); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	for i, f := range beamflags2 {
		if f != byte(FlagNull) {
			t.Fatalf("ModeImplicitNull: beam %d got %#x, want NULL", i, f)
		}
	}
}

func TestFixTimestamps(t *testing.T) {
	e := newTestESF([]Edit{
		{TimeD: 99.9995, Beam: 1, Action: ActionFlag},
		{TimeD: 50.0, Beam: 2, Action: ActionFlag},
	}, ModeExplicit, 3)

	e.FixTimestamps(100.0, 0.001)

	// newTestESF sorts by time: Edits[0] is the 50.0 edit, Edits[1] the 99.9995 one.
	if e.Edits[1].TimeD != 100.0 {
		t.Fatalf("expected timestamp snapped to 100.0, got %v", e.Edits[1].TimeD)
	}
	if e.Edits[0].TimeD != 50.0 {
		t.Fatalf("timestamp outside tolerance should be untouched, got %v", e.Edits[0].TimeD)
	}
}
