package bedpesummary

import (
	"bufio"
	"log"
	"os"

	"github.com/jgbaldwinbrown/csvh"
)

const DefaultBins = 10

func Run(flags Flags) (err error) {
	in, e := OpenInput(flags.Input)
	if e != nil {
		return e
	}
	defer func() { csvh.DeferE(&err, in.Close()) }()

	rep, ok := SummarizeBedpe(in, DefaultBins)
	if !ok {
		return nil
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	return FprintReport(w, rep)
}

func FullBedpeSummary() {
	if e := Run(GetFlags()); e != nil {
		log.Fatal(e)
	}
}
