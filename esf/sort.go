package esf

import "math"

// Compare orders edit events by (time_d, beam, action), the ordering used
// for ESF schema version >= 2.
func Compare(a, b Edit) bool {
	if a.TimeD != b.TimeD {
		return a.TimeD < b.TimeD
	}
	if a.Beam != b.Beam {
		return a.Beam < b.Beam
	}
	return a.Action < b.Action
}

// esfV1TimeBucket is the coarsening granularity applied to version-1 ESF
// files, whose timestamps were historically truncated in storage to
// roughly 1 millisecond.
const esfV1TimeBucket = 0.001

// CompareCoarse is the comparator used for ESF schema version 1, which
// buckets time_d to ~1ms before comparing so that jittered duplicates of
// the same logical edit sort adjacently.
func CompareCoarse(a, b Edit) bool {
	at := math.Floor(a.TimeD/esfV1TimeBucket + 0.5)
	bt := math.Floor(b.TimeD/esfV1TimeBucket + 0.5)
	if at != bt {
		return at < bt
	}
	if a.Beam != b.Beam {
		return a.Beam < b.Beam
	}
	return a.Action < b.Action
}

type run struct {
	start, end int
}

// MergeSort is a stable hybrid natural/pairwise merge sort with a
// galloping merge step, generalized over any []Edit and comparator.
//
// It mirrors the structure of the classic BSD mergesort used by the
// reference edit engine: an initial pass collects ascending ("natural")
// runs, padding any run shorter than naturalRun (16) out to that length
// with insertion sort; successive passes merge adjacent runs pairwise
// into a scratch arena, swapping the arena and the working slice each
// pass (ping-pong buffers) until one run remains. The merge step starts
// linear and switches to an exponential-then-binary ("galloping") search
// once one side has won gallopThreshold (6) consecutive comparisons in a
// row, which keeps the whole sort close to O(n) on the nearly-sorted
// input produced by edit tools that mostly append in time order.
func MergeSort(edits []Edit, less func(a, b Edit) bool) {
	n := len(edits)
	if n < 2 {
		return
	}

	runs := collectRuns(edits, less)

	buf := make([]Edit, n)
	src := edits
	dst := buf
	srcIsOriginal := true

	for len(runs) > 1 {
		next := make([]run, 0, (len(runs)+1)/2)
		i := 0
		for i+1 < len(runs) {
			r1, r2 := runs[i], runs[i+1]
			mergeGallop(dst[r1.start:r2.end], src[r1.start:r1.end], src[r1.end:r2.end], less)
			next = append(next, run{r1.start, r2.end})
			i += 2
		}
		if i < len(runs) {
			last := runs[i]
			copy(dst[last.start:last.end], src[last.start:last.end])
			next = append(next, last)
		}
		src, dst = dst, src
		srcIsOriginal = !srcIsOriginal
		runs = next
	}

	if !srcIsOriginal {
		copy(edits, src)
	}
}

// collectRuns scans edits for maximal non-decreasing runs. Any run shorter
// than naturalRun is extended (via insertion sort, never past len(edits))
// out to the threshold length, matching spec's pairwise/natural switch.
func collectRuns(edits []Edit, less func(a, b Edit) bool) []run {
	n := len(edits)
	runs := make([]run, 0, n/naturalRun+1)

	i := 0
	for i < n {
		j := i + 1
		for j < n && !less(edits[j], edits[j-1]) {
			j++
		}
		runLen := j - i
		if runLen < naturalRun {
			end := i + naturalRun
			if end > n {
				end = n
			}
			insertionSort(edits[i:end], less)
			j = end
		}
		runs = append(runs, run{i, j})
		i = j
	}

	return runs
}

func insertionSort(edits []Edit, less func(a, b Edit) bool) {
	for i := 1; i < len(edits); i++ {
		v := edits[i]
		j := i - 1
		for j >= 0 && less(v, edits[j]) {
			edits[j+1] = edits[j]
			j--
		}
		edits[j+1] = v
	}
}

// mergeGallop stably merges a and b into dst (len(dst) == len(a)+len(b)).
func mergeGallop(dst, a, b []Edit, less func(x, y Edit) bool) {
	ai, bi, di := 0, 0, 0

	const (
		sideNone = 0
		sideA    = 1
		sideB    = 2
	)
	lastSide := sideNone
	streak := 0

	for ai < len(a) && bi < len(b) {
		if streak >= gallopThreshold {
			// Galloping: bulk-copy a run of consecutive wins from whichever
			// side is currently winning, found via exponential+binary search.
			if lastSide == sideA {
				count := gallopCount(a[ai:], b[bi], less, false)
				n := copy(dst[di:], a[ai:ai+count])
				di += n
				ai += count
			} else {
				count := gallopCount(b[bi:], a[ai], less, true)
				n := copy(dst[di:], b[bi:bi+count])
				di += n
				bi += count
			}
			streak = 0
			lastSide = sideNone
			continue
		}

		if less(b[bi], a[ai]) {
			dst[di] = b[bi]
			bi++
			di++
			if lastSide == sideB {
				streak++
			} else {
				lastSide = sideB
				streak = 1
			}
		} else {
			dst[di] = a[ai]
			ai++
			di++
			if lastSide == sideA {
				streak++
			} else {
				lastSide = sideA
				streak = 1
			}
		}
	}

	if ai < len(a) {
		copy(dst[di:], a[ai:])
	}
	if bi < len(b) {
		copy(dst[di:], b[bi:])
	}
}

// gallopCount returns the length of the leading run of s that must be
// emitted before key (from the other side of the merge), preserving
// stability: when key came from the right/b side (keyFromA == false, i.e.
// s is a and key is from b) ties favor a, so elements equal to key count;
// when key came from the left/a side (keyFromA == true, s is b) ties
// favor a already having been emitted, so only strictly-less elements of
// b count.
func gallopCount(s []Edit, key Edit, less func(x, y Edit) bool, keyFromA bool) int {
	pred := func(e Edit) bool {
		if keyFromA {
			return less(e, key)
		}
		return !less(key, e)
	}

	n := len(s)
	if n == 0 || !pred(s[0]) {
		return 0
	}

	lo, hi := 0, 1
	for hi < n && pred(s[hi]) {
		lo = hi
		hi *= 2
	}
	if hi > n {
		hi = n
	}
	// invariant: pred(s[lo]) == true, hi is either n or first known-false index
	for lo < hi-1 {
		mid := lo + (hi-lo)/2
		if pred(s[mid]) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo + 1
}
