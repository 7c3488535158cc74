package bedpesummary

import (
	"strings"
	"testing"
)

func TestParseBedpeLine(t *testing.T) {
	fields := strings.Split("chr1\t100\t200\tchr2\t5000\t5100\tsv1\t60\t+\t-\textra", "\t")
	b, status := ParseBedpeLine(fields)
	if status != BedpeValid {
		t.Fatalf("status: got %v, want BedpeValid", status)
	}
	if b.A.Chr != "chr1" || b.A.Start != 100 || b.A.End != 200 {
		t.Errorf("side A: got %v", b.A)
	}
	if b.B.Chr != "chr2" || b.B.Start != 5000 || b.B.End != 5100 {
		t.Errorf("side B: got %v", b.B)
	}
	if b.Name != "sv1" || b.Score != "60" || b.Strand1 != "+" || b.Strand2 != "-" {
		t.Errorf("optional columns: got %+v", b)
	}
	if len(b.Fields) != 1 || b.Fields[0] != "extra" {
		t.Errorf("extra fields: got %v", b.Fields)
	}
}

func TestParseBedpeLineNoStrands(t *testing.T) {
	fields := strings.Split("chr1\t100\t200\tchr2\t5000\t5100", "\t")
	b, status := ParseBedpeLine(fields)
	if status != BedpeValid {
		t.Fatalf("status: got %v, want BedpeValid", status)
	}
	if b.Strand1 != "" || b.Strand2 != "" {
		t.Errorf("strands should be empty, got %q %q", b.Strand1, b.Strand2)
	}
}

func TestParseBedpeLineHeaders(t *testing.T) {
	headers := [][]string{
		{"#chrom1", "start1", "end1"},
		{"track", "name=svs"},
		{"browser", "position", "chr1"},
		{""},
		{},
	}
	for _, h := range headers {
		if _, status := ParseBedpeLine(h); status != BedpeHeader {
			t.Errorf("%v: got %v, want BedpeHeader", h, status)
		}
	}
}

func TestParseBedpeLineInvalid(t *testing.T) {
	bads := [][]string{
		{"chr1", "100", "200", "chr2", "5000"},
		{"chr1", "x", "200", "chr2", "5000", "5100"},
		{"chr1", "100", "200", "chr2", "5e3", "5100"},
	}
	for _, bad := range bads {
		if _, status := ParseBedpeLine(bad); status != BedpeInvalid {
			t.Errorf("%v: got %v, want BedpeInvalid", bad, status)
		}
	}
}

func TestBedpeScanner(t *testing.T) {
	in := "#chrom1\tstart1\tend1\tchrom2\tstart2\tend2\n" +
		"chr1\t100\t200\tchr1\t300\t400\tsv1\t60\t+\t+\n" +
		"chr1\t50\t60\tchr2\t200\t210\tsv2\t60\t+\t-\n"
	s := NewBedpeScanner(strings.NewReader(in))

	_, status, line := s.Next()
	if status != BedpeHeader || line != 1 {
		t.Errorf("header line: got status %v line %v", status, line)
	}

	b, status, line := s.Next()
	if status != BedpeValid || line != 2 {
		t.Errorf("first record: got status %v line %v", status, line)
	}
	if b.A.Chr != "chr1" || b.B.Chr != "chr1" || b.Name != "sv1" {
		t.Errorf("first record: got %+v", b)
	}

	b, status, line = s.Next()
	if status != BedpeValid || line != 3 {
		t.Errorf("second record: got status %v line %v", status, line)
	}
	if b.B.Chr != "chr2" || b.Strand2 != "-" {
		t.Errorf("second record: got %+v", b)
	}

	if _, status, _ = s.Next(); status != BedpeInvalid {
		t.Errorf("end of input: got %v, want BedpeInvalid", status)
	}
}
