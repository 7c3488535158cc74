package bedpesummary

import (
	"io"
	"math"
	"sort"
)

// SvTally holds the running structural-variant counts plus the buffered
// distances the batch statistics need at report time.
type SvTally struct {
	Inversion int64
	Insertion int64
	Deletion int64
	Interchrom int64
	Intrachrom int64
	TotalDistance int64
	Distances []int64
}

// Observe classifies one record and updates the tally. Counting follows the
// original bedtools bedpesummary exactly, including its swapped use of the
// interchrom/intrachrom labels: same-chromosome pairs land in Interchrom,
// differing-chromosome pairs in Intrachrom and the distance sample.
func Observe(e BedpeEntry, t *SvTally) {
	if e.A.Chr == e.B.Chr {
		t.Interchrom++
		return
	}
	t.Intrachrom++
	d := Abs(e.B.Start - e.A.Start)
	t.Distances = append(t.Distances, d)
	t.TotalDistance += d
	if e.Strand1 == e.Strand2 {
		t.Inversion++
	} else if e.Strand1 == "+" && e.Strand2 == "-" {
		t.Deletion++
	} else if e.Strand1 == "-" && e.Strand2 == "+" {
		t.Insertion++
	}
	// Any other strand combination stays out of all three buckets.
}

// MeanDistance is the truncated integer mean of the accumulated distances,
// or NaN when none were accumulated.
func (t *SvTally) MeanDistance() float64 {
	if t.Intrachrom == 0 {
		return math.NaN()
	}
	return float64(t.TotalDistance / t.Intrachrom)
}

// MedianDistance sorts a copy of ds and returns the integer median: the
// middle element for odd lengths, the truncated mean of the two middle
// elements for even lengths. An empty sample returns 0.
func MedianDistance(ds []int64) int64 {
	if len(ds) == 0 {
		return 0
	}
	sorted := append([]int64{}, ds...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// SummarizeBedpe consumes r until the first invalid line and reports on all
// valid records seen before it. ok is false if the very first read is
// invalid; nothing should be printed in that case.
func SummarizeBedpe(r io.Reader, nbins int) (rep Report, ok bool) {
	s := NewBedpeScanner(r)
	entry, status, _ := s.Next()
	if status == BedpeInvalid {
		return rep, false
	}

	var t SvTally
	for ; status != BedpeInvalid; entry, status, _ = s.Next() {
		if status == BedpeValid {
			Observe(entry, &t)
		}
	}
	return BuildReport(t, nbins), true
}
