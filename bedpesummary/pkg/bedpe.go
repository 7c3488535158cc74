package bedpesummary

import (
	"io"
	"strconv"

	"github.com/jgbaldwinbrown/fastats/pkg"
	"github.com/jgbaldwinbrown/fasttsv"
)

// BedpeEntry is one BEDPE record: two located ends plus the optional name,
// score, and strand columns. Trailing columns land in Fields untouched.
type BedpeEntry struct {
	A fastats.ChrSpan
	B fastats.ChrSpan
	Name string
	Score string
	Strand1 string
	Strand2 string
	Fields []string
}

type BedpeStatus int

const (
	BedpeInvalid BedpeStatus = iota
	BedpeHeader
	BedpeValid
)

func IsHeader(fields []string) bool {
	if len(fields) == 0 || len(fields[0]) == 0 {
		return true
	}
	if fields[0][0] == '#' {
		return true
	}
	return fields[0] == "track" || fields[0] == "browser"
}

// ParseBedpeLine parses one tab-split BEDPE line. Lines need at least the six
// positional columns chrom1 start1 end1 chrom2 start2 end2; name, score, and
// the two strands follow when present.
func ParseBedpeLine(fields []string) (b BedpeEntry, status BedpeStatus) {
	if IsHeader(fields) {
		return b, BedpeHeader
	}
	if len(fields) < 6 {
		return b, BedpeInvalid
	}
	var e error
	b.A.Chr = fields[0]
	b.A.Start, e = strconv.ParseInt(fields[1], 10, 64)
	if e != nil { return BedpeEntry{}, BedpeInvalid }
	b.A.End, e = strconv.ParseInt(fields[2], 10, 64)
	if e != nil { return BedpeEntry{}, BedpeInvalid }
	b.B.Chr = fields[3]
	b.B.Start, e = strconv.ParseInt(fields[4], 10, 64)
	if e != nil { return BedpeEntry{}, BedpeInvalid }
	b.B.End, e = strconv.ParseInt(fields[5], 10, 64)
	if e != nil { return BedpeEntry{}, BedpeInvalid }
	if len(fields) > 6 { b.Name = fields[6] }
	if len(fields) > 7 { b.Score = fields[7] }
	if len(fields) > 8 { b.Strand1 = fields[8] }
	if len(fields) > 9 { b.Strand2 = fields[9] }
	if len(fields) > 10 {
		b.Fields = append([]string{}, fields[10:]...)
	}
	return b, BedpeValid
}

// BedpeScanner pulls one BEDPE record at a time from a reader.
type BedpeScanner struct {
	s *fasttsv.Scanner
	line int
}

func NewBedpeScanner(r io.Reader) *BedpeScanner {
	return &BedpeScanner{s: fasttsv.NewScanner(r)}
}

// Next returns the next record, its status, and its 1-based line number.
// BedpeInvalid means end of input or an unparsable line; callers treat the
// first one as end-of-stream.
func (b *BedpeScanner) Next() (BedpeEntry, BedpeStatus, int) {
	if !b.s.Scan() {
		return BedpeEntry{}, BedpeInvalid, b.line
	}
	b.line++
	entry, status := ParseBedpeLine(b.s.Line())
	return entry, status, b.line
}
