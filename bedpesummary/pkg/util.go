package bedpesummary

import (
	"flag"
	"io"
	"os"

	"github.com/jgbaldwinbrown/csvh"
)

type Flags struct {
	Input string
}

func GetFlags() (f Flags) {
	flag.StringVar(&f.Input, "i", "stdin", "Input BEDPE path (\"stdin\" reads standard input; .gz accepted).")
	flag.Parse()
	return
}

// OpenInput opens path for reading, transparently decompressing .gz files.
// An empty path or "stdin" reads standard input.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "stdin" {
		return io.NopCloser(os.Stdin), nil
	}
	return csvh.OpenMaybeGz(path)
}

func Must(e error) {
	if e != nil {
		panic(e)
	}
}

func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
