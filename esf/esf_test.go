package esf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenWriteLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	swath := filepath.Join(dir, "survey.gsf")

	w, err := Open(swath, false, Write)
	if err != nil {
		t.Fatalf("Open (write): %v", err)
	}

	events := []Edit{
		{TimeD: 100.0, Beam: 5, Action: ActionFlag},
		{TimeD: 100.0, Beam: 5, Action: ActionUnflag},
		{TimeD: 200.0, Beam: 7, Action: ActionZero},
	}
	for _, ev := range events {
		if err := w.Save(ev); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := Open(swath, true, NoWrite)
	if err != nil {
		t.Fatalf("Open (load): %v", err)
	}
	defer r.Close()

	if len(r.Edits) != len(events) {
		t.Fatalf("got %d edits, want %d", len(r.Edits), len(events))
	}
	if r.Version != 3 {
		t.Fatalf("expected version 3, got %d", r.Version)
	}

	want := []Edit{
		{TimeD: 100.0, Beam: 5, Action: ActionFlag},
		{TimeD: 100.0, Beam: 5, Action: ActionUnflag},
		{TimeD: 200.0, Beam: 7, Action: ActionZero},
	}
	for i, w := range want {
		if r.Edits[i].TimeD != w.TimeD || r.Edits[i].Beam != w.Beam || r.Edits[i].Action != w.Action {
			t.Fatalf("index %d: got %+v, want %+v", i, r.Edits[i], w)
		}
	}

	beamflags := make([]byte, 8)
	if err := r.Apply(100.0, 0, beamflags); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if beamflags[5] != byte(FlagNone) {
		t.Fatalf("beam 5 expected NONE after last-writer-wins, got %#x", beamflags[5])
	}
}

func TestOpenAppendKeepsExistingEdits(t *testing.T) {
	dir := t.TempDir()
	swath := filepath.Join(dir, "survey.gsf")

	w, _ := Open(swath, false, Write)
	_ = w.Save(Edit{TimeD: 1, Beam: 1, Action: ActionFlag})
	_ = w.Close()

	a, err := Open(swath, true, Append)
	if err != nil {
		t.Fatalf("Open (append): %v", err)
	}
	if len(a.Edits) != 1 {
		t.Fatalf("expected 1 pre-existing edit, got %d", len(a.Edits))
	}
	if err := a.Save(Edit{TimeD: 2, Beam: 2, Action: ActionUnflag}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	_ = a.Close()

	if _, err := os.Stat(swath + ".esf.tmp"); err != nil {
		t.Fatalf("expected backup file to exist: %v", err)
	}

	r, err := Open(swath, true, NoWrite)
	if err != nil {
		t.Fatalf("Open (reload): %v", err)
	}
	defer r.Close()
	if len(r.Edits) != 2 {
		t.Fatalf("expected 2 edits after append, got %d", len(r.Edits))
	}
}

func TestHeaderBannerRoundTrip(t *testing.T) {
	header := buildHeader(ModeImplicitGood)
	version, mode, err := DecodeHeaderBanner(header)
	if err != nil {
		t.Fatalf("DecodeHeaderBanner: %v", err)
	}
	if version != 3 {
		t.Fatalf("expected version 3, got %d", version)
	}
	if mode != ModeImplicitGood {
		t.Fatalf("expected mode ImplicitGood, got %d", mode)
	}
	if len(header) != headerSize {
		t.Fatalf("header length = %d, want %d", len(header), headerSize)
	}
}

func TestOpenNoLoadNoWriteFails(t *testing.T) {
	dir := t.TempDir()
	swath := filepath.Join(dir, "survey.gsf")
	if _, err := Open(swath, false, NoWrite); err == nil {
		t.Fatalf("expected ErrNoDataLoaded when neither loading nor writing")
	}
}
