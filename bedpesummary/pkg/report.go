package bedpesummary

import (
	"encoding/json"
	"io"
)

// Report mirrors the original bedtools bedpesummary output, key spelling and
// order included. The interchrom/intrachrom labels are swapped relative to
// their literal meaning; see Observe.
type Report struct {
	Inversion int64 `json:"inversion"`
	Insertion int64 `json:"insertion"`
	Deletion int64 `json:"deletion"`
	Interchrom int64 `json:"n_interchrom"`
	Intrachrom int64 `json:"n_intrachrom"`
	MeanLength Float `json:"mean intrachromasomal sv length"`
	MedianLength int64 `json:"median intrachromasomal sv length"`
	Histogram HistogramData `json:"histogram"`
}

func BuildReport(t SvTally, nbins int) Report {
	return Report{
		Inversion: t.Inversion,
		Insertion: t.Insertion,
		Deletion: t.Deletion,
		Interchrom: t.Interchrom,
		Intrachrom: t.Intrachrom,
		MeanLength: Float(t.MeanDistance()),
		MedianLength: MedianDistance(t.Distances),
		Histogram: MakeHistogram(t.Distances, nbins),
	}
}

func FprintReport(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	return enc.Encode(rep)
}
