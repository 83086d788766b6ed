package renderer

import (
	"fmt"
	"io"

	"github.com/rentfolio/rentfolio"
)

// CPAReport writes the depreciation schedule in the flat textual format
// handed to CPAs and tax software. Section order, section labels and column
// order are a compatibility contract with downstream consumers: do not
// reorder them.
func CPAReport(w io.Writer, p *rentfolio.Property, cb rentfolio.CostBasis, years float64, schedule []rentfolio.ScheduleItem) error {
	depType := "Commercial Straight-Line"
	if p.Type.Residential() {
		depType = "Residential Straight-Line"
	}
	placedInService := ""
	if p.PlacedInService != nil {
		placedInService = p.PlacedInService.String()
	}

	// header metadata
	var err error
	write := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, args...)
	}

	write("DEPRECIATION SCHEDULE\n\n")
	write("Property Address,%s\n", p.Address)
	write("Property Type,%s\n", p.Type)
	write("Depreciation Type,%s\n", depType)
	write("Depreciation Period,%.1f years\n", years)
	write("Placed in Service Date,%s\n", placedInService)
	write("\n")

	write("COST BASIS\n")
	write("Total Basis,%.2f\n", cb.TotalBasis)
	write("Land Value,%.2f\n", cb.LandValue)
	write("Depreciable Basis,%.2f\n", cb.DepreciableBasis)
	write("\n")

	write("ANNUAL DEPRECIATION SCHEDULE\n")
	write("Year,Months,Beginning Basis,Depreciation,Accumulated Depreciation,Remaining Basis\n")
	for _, item := range schedule {
		write("%d,%.1f,%.2f,%.2f,%.2f,%.2f\n",
			item.Year, item.Months, item.BeginningBasis,
			item.Depreciation, item.Accumulated, item.RemainingBasis)
	}
	return err
}
