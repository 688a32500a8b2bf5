package esf

import (
	"math/rand"
	"sort"
	"testing"
)

func TestMergeSortOrdersTimeBeamAction(t *testing.T) {
	edits := []Edit{
		{TimeD: 200.0, Beam: 7, Action: ActionZero},
		{TimeD: 100.0, Beam: 5, Action: ActionFlag},
		{TimeD: 100.0, Beam: 5, Action: ActionUnflag},
	}
	MergeSort(edits, Compare)

	want := []Edit{
		{TimeD: 100.0, Beam: 5, Action: ActionFlag},
		{TimeD: 100.0, Beam: 5, Action: ActionUnflag},
		{TimeD: 200.0, Beam: 7, Action: ActionZero},
	}
	for i := range want {
		if edits[i] != want[i] {
			t.Fatalf("index %d: got %+v, want %+v", i, edits[i], want[i])
		}
	}
}

func TestMergeSortStability(t *testing.T) {
	// equal keys must retain creation order
	edits := make([]Edit, 0, 50)
	for i := 0; i < 50; i++ {
		edits = append(edits, Edit{TimeD: 1.0, Beam: int32(i % 5), Action: ActionFlag, Use: int32(i)})
	}

	MergeSort(edits, Compare)

	// group by beam; within each group, Use (creation order) must be ascending
	last := map[int32]int32{}
	for _, e := range edits {
		if prev, ok := last[e.Beam]; ok && e.Use < prev {
			t.Fatalf("instability detected for beam %d: %d appeared after %d", e.Beam, e.Use, prev)
		}
		last[e.Beam] = e.Use
	}
}

func TestMergeSortMatchesStdlibOnRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	n := 733
	edits := make([]Edit, n)
	for i := range edits {
		edits[i] = Edit{
			TimeD:  float64(rng.Intn(50)),
			Beam:   int32(rng.Intn(10)),
			Action: Action(rng.Intn(5) + 1),
			Use:    int32(i),
		}
	}

	want := make([]Edit, n)
	copy(want, edits)
	sort.SliceStable(want, func(i, j int) bool { return Compare(want[i], want[j]) })

	MergeSort(edits, Compare)

	for i := range want {
		if edits[i] != want[i] {
			t.Fatalf("index %d: got %+v, want %+v", i, edits[i], want[i])
		}
	}
}

func TestMergeSortNearlySorted(t *testing.T) {
	// nearly sorted input exercises the galloping merge path
	n := 500
	edits := make([]Edit, n)
	for i := range edits {
		edits[i] = Edit{TimeD: float64(i), Beam: 1, Action: ActionFlag}
	}
	// perturb a handful of entries
	edits[10], edits[11] = edits[11], edits[10]
	edits[400], edits[405] = edits[405], edits[400]

	MergeSort(edits, Compare)

	for i := 1; i < n; i++ {
		if edits[i].TimeD < edits[i-1].TimeD {
			t.Fatalf("not sorted at index %d: %v then %v", i, edits[i-1], edits[i])
		}
	}
}

func TestMergeSortSmallAndEmpty(t *testing.T) {
	MergeSort(nil, Compare)
	MergeSort([]Edit{}, Compare)
	one := []Edit{{TimeD: 1}}
	MergeSort(one, Compare)
	if one[0].TimeD != 1 {
		t.Fatalf("single-element sort mutated value")
	}
}

func TestCompareCoarseBucketsSubMillisecond(t *testing.T) {
	a := Edit{TimeD: 100.0001, Beam: 1, Action: ActionFlag}
	b := Edit{TimeD: 100.0002, Beam: 2, Action: ActionFlag}
	// both round to the same 1ms bucket, so ordering falls through to beam
	if !CompareCoarse(a, b) {
		t.Fatalf("expected a before b once bucketed by time")
	}
}
