package bedpesummary

// HistogramData is a fixed-bin-count histogram over a finished distance
// sample, computed once at report time.
type HistogramData struct {
	NBins int `json:"-"`
	MinVal int64 `json:"min_val"`
	MaxVal int64 `json:"-"`
	BinWidth int64 `json:"bin_width"`
	BinCounts []int64 `json:"bin_counts"`
}

// MakeHistogram bins data into nbins equal-width bins. Empty data,
// nbins <= 0, or a range narrower than nbins leave every bin zero.
func MakeHistogram(data []int64, nbins int) HistogramData {
	h := HistogramData{NBins: nbins}
	if nbins > 0 {
		h.BinCounts = make([]int64, nbins)
	}
	if len(data) == 0 || nbins <= 0 {
		return h
	}

	h.MinVal = data[0]
	h.MaxVal = data[0]
	for _, v := range data {
		if v < h.MinVal {
			h.MinVal = v
		}
		if v > h.MaxVal {
			h.MaxVal = v
		}
	}
	h.BinWidth = (h.MaxVal - h.MinVal) / int64(nbins)
	if h.BinWidth == 0 {
		return h
	}

	for _, v := range data {
		i := int((v - h.MinVal) / h.BinWidth)
		// The truncated width pushes top values past the last bin; clamp
		// them so the counts always cover the whole sample.
		if i >= nbins {
			i = nbins - 1
		}
		h.BinCounts[i]++
	}
	return h
}

// CountTotal is the number of values binned so far; zero for degenerate
// histograms.
func (h HistogramData) CountTotal() int64 {
	var sum int64
	for _, c := range h.BinCounts {
		sum += c
	}
	return sum
}
