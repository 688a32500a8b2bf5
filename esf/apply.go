package esf

import "math"

// Apply applies this ESF's edit events to a single ping's beam flags.
//
// timeD is the ping timestamp (seconds since epoch, as a float), multiplicity
// is the ordinal of this ping among others sharing the same timestamp
// (0 for the first/only ping at that time), and beamflags is the ping's
// beam-flag array, mutated in place.
//
// The set of edits considered is exactly those within the version-dependent
// time tolerance and whose beam number (after removing the multiplicity
// offset) falls in [0, len(beamflags)). Within that set, edits are applied
// in the order they were created; only the last effective edit determines
// the final flag. Earlier edits for the same beam are applied in turn as
// well, and each applied edit has UseApplied added to its Use counter;
// Apply never adds UseOverridden itself, it only skips edits whose Use has
// already reached that threshold.
//
// If no edit is applied to a beam, the ESF's Mode decides the beam's final
// state: ModeExplicit leaves it untouched, ModeImplicitNull forces NULL,
// ModeImplicitGood forces NONE.
//
// Whenever a beam's resulting flag differs from its original value, the
// change is appended to the stream file (if one is open) as
// (timeD, beam+beamOffset, action).
func (e *ESF) Apply(timeD float64, multiplicity int, beamflags []byte) error {
	n := len(e.Edits)
	nbath := len(beamflags)

	beamOffset := int32(multiplicity * MultiplicityFactor)
	beamOffsetMax := beamOffset + MultiplicityFactor

	maxTimeDiff := MaxTimeDiff
	if e.Version == 1 {
		maxTimeDiff = MaxTimeDiffV1
	}

	if n == 0 {
		e.applyImplicit(beamflags)
		return nil
	}

	first, last := e.findWindow(timeD, beamOffset, beamOffsetMax, maxTimeDiff)
	if last < first {
		e.applyImplicit(beamflags)
		return nil
	}

	// Flag edits whose beam number (with multiplicity removed) has no
	// corresponding beam in this ping: negative is out-of-range, too large
	// is an invalid index. Neither prevents the edit from being considered
	// below for beams that DO exist in this ping (a stray out-of-range edit
	// shares its time/multiplicity bucket with otherwise-valid ones).
	for j := first; j <= last; j++ {
		rel := e.Edits[j].Beam % MultiplicityFactor
		switch {
		case rel < 0:
			e.Edits[j].Use += UseBeamOutOfRange
		case int(rel) >= nbath:
			e.Edits[j].Use += UseInvalidBeamIndex
		}
	}

	for i := 0; i < nbath; i++ {
		ibeam := int32(i) + beamOffset
		original := beamflags[i]
		applied := false
		var action Action

		for j := first; j <= last; j++ {
			ed := &e.Edits[j]
			if ed.Beam != ibeam || ed.Use >= UseOverridden {
				continue
			}
			if Unusable(beamflags[i]) {
				ed.Use += UseSkippedNullBeam
				continue
			}
			newFlag, ok := applyAction(beamflags[i], ed.Action)
			if !ok {
				continue
			}
			beamflags[i] = newFlag
			ed.Use += UseApplied
			applied = true
			action = ed.Action
		}

		if !applied {
			switch e.Mode {
			case ModeImplicitNull:
				beamflags[i] = byte(FlagNull)
			case ModeImplicitGood:
				beamflags[i] = byte(FlagNone)
			}
			if beamflags[i] != original {
				applied = true
				action = ActionZero
			}
		}

		if applied && beamflags[i] != original {
			_ = e.SaveApplied(Edit{TimeD: timeD, Beam: ibeam, Action: action})
		}
	}

	e.startNextSearch = last + 1
	if e.startNextSearch >= n {
		e.startNextSearch = n - 1
	}

	return nil
}

// applyImplicit handles the zero-edits (or no-window-match) case: only the
// implicit modes have any effect.
func (e *ESF) applyImplicit(beamflags []byte) {
	if e.Mode == ModeExplicit {
		return
	}
	forced := byte(FlagNone)
	if e.Mode == ModeImplicitNull {
		forced = byte(FlagNull)
	}
	for i := range beamflags {
		beamflags[i] = forced
	}
}

// findWindow locates the first and last edit indices whose time is within
// tolerance of timeD and whose beam falls in [beamOffset, beamOffsetMax).
// It starts the scan from startNextSearch, matching the reference engine's
// reuse of the previous ping's search cursor, but falls back to scanning
// from the start of the edit slice whenever that cursor can't possibly be
// correct for this ping (e.g. time_d has gone backwards).
func (e *ESF) findWindow(timeD float64, beamOffset, beamOffsetMax int32, maxTimeDiff float64) (first, last int) {
	n := len(e.Edits)
	start := e.startNextSearch

	rewind := false
	if start > 0 {
		if timeD < e.Edits[start].TimeD-maxTimeDiff && timeD < e.Edits[start-1].TimeD-maxTimeDiff {
			rewind = true
		} else if math.Abs(timeD-e.Edits[start-1].TimeD) <= maxTimeDiff &&
			(e.Edits[start-1].Beam < beamOffset || e.Edits[start-1].Beam > beamOffsetMax) {
			rewind = true
		}
	}
	if rewind || start >= n {
		start = 0
		if start >= n {
			start = 0
		}
	}

	first = start
	last = first - 1

	for j := start; j < n && timeD >= e.Edits[j].TimeD-maxTimeDiff; j++ {
		if math.Abs(e.Edits[j].TimeD-timeD) < maxTimeDiff &&
			e.Edits[j].Beam >= beamOffset && e.Edits[j].Beam < beamOffsetMax {
			if last < first {
				first = j
			}
			last = j
		}
	}

	return first, last
}

// FixTimestamps snaps every edit event within tolerance of timeD to exactly
// timeD. Used when migrating edits between re-time-tagged datasets, where
// the edit timestamps and the ping timestamps they should match have
// drifted apart by less than tolerance.
func (e *ESF) FixTimestamps(timeD, tolerance float64) {
	for i := range e.Edits {
		if math.Abs(e.Edits[i].TimeD-timeD) < tolerance {
			e.Edits[i].TimeD = timeD
		}
	}
}
