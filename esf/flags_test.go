package esf

import "testing"

func TestFlagPredicates(t *testing.T) {
	if !OK(byte(FlagNone)) {
		t.Fatalf("FlagNone should be OK")
	}
	if OK(byte(FlagManual)) {
		t.Fatalf("FlagManual should not be OK (it carries a flag bit)")
	}
	if Unusable(byte(FlagManual)) {
		t.Fatalf("a manually-flagged (but not null) beam should still be usable for further edits")
	}
	if !Unusable(byte(FlagNull)) {
		t.Fatalf("FlagNull should be unusable")
	}
}

func TestApplyActionSetters(t *testing.T) {
	cases := []struct {
		action Action
		want   byte
	}{
		{ActionFlag, byte(FlagManual)},
		{ActionFilter, byte(FlagFilter)},
		{ActionSonar, byte(FlagSonar)},
		{ActionUnflag, byte(FlagNone)},
		{ActionZero, byte(FlagNull)},
	}
	for _, c := range cases {
		got, ok := applyAction(byte(FlagNone), c.action)
		if !ok {
			t.Fatalf("applyAction(%v) reported not-ok", c.action)
		}
		if got != c.want {
			t.Fatalf("applyAction(%v) = %#x, want %#x", c.action, got, c.want)
		}
	}
}
