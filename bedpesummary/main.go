package main

import (
	"github.com/mp15/bedtools2/bedpesummary/pkg"
)

func main() {
	bedpesummary.FullBedpeSummary()
}
