package esf

// BeamFlag is the on-disk beam-flag byte. The wire bit layout is not fully
// pinned down by the format beyond "composable via masks"; this module
// defines NONE/NULL/MANUAL/FILTER/SONAR as independent OR-able bits;
// "unusable" means the NULL bit is set (see Unusable).
type BeamFlag uint8

const (
	FlagNone   BeamFlag = 0x00
	FlagNull   BeamFlag = 0x01
	FlagManual BeamFlag = 0x02
	FlagFilter BeamFlag = 0x04
	FlagSonar  BeamFlag = 0x08
)

// Unusable reports whether a beam flag marks the beam as null: no sounding
// at all. This is deliberately narrower than "has any flag bit set" -
// a beam flagged MANUAL/FILTER/SONAR still carries real (if suspect) data
// and remains eligible for further edits (e.g. a later UNFLAG), whereas a
// NULL beam never does. Apply relies on exactly this distinction: editing
// a manually-flagged beam again must still be able to change its flag.
func Unusable(f byte) bool {
	return f&byte(FlagNull) != 0
}

// OK reports whether a beam flag marks the beam as entirely unedited good
// data, with no flag bits of any kind set.
func OK(f byte) bool {
	return f == byte(FlagNone)
}

// SetNone clears all flag bits (marks the beam good).
func SetNone(f byte) byte { return byte(FlagNone) }

// SetNull marks the beam null (zeroed depth, no longer valid data).
func SetNull(f byte) byte { return byte(FlagNull) }

// SetManual sets the manual-edit flag bit, preserving other bits.
func SetManual(f byte) byte { return f | byte(FlagManual) }

// SetFilter sets the automatic-filter flag bit, preserving other bits.
func SetFilter(f byte) byte { return f | byte(FlagFilter) }

// SetSonar sets the sonar-vendor flag bit, preserving other bits.
func SetSonar(f byte) byte { return f | byte(FlagSonar) }

// applyAction returns the new beam-flag byte that applying action to flag
// produces.
func applyAction(flag byte, action Action) (byte, bool) {
	switch action {
	case ActionFlag:
		return SetManual(flag), true
	case ActionFilter:
		return SetFilter(flag), true
	case ActionSonar:
		return SetSonar(flag), true
	case ActionUnflag:
		return SetNone(flag), true
	case ActionZero:
		return SetNull(flag), true
	default:
		return flag, false
	}
}
