package dataset

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/antflow/core"
)

// WriteArcs emits specs in the 5-field shape, one per line.
func WriteArcs(w io.Writer, specs []core.ArcSpec) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# from to commodity cost capacity")
	for _, s := range specs {
		fmt.Fprintf(bw, "%d %d %d %d %d\n", s.From, s.To, s.Commodity, s.Cost, s.Capacity)
	}
	return bw.Flush()
}

// WriteSupplies emits recs as "commodity demand [initial]".
func WriteSupplies(w io.Writer, recs []SupplyRecord) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# commodity demand [initial]")
	for _, r := range recs {
		if r.Initial != 0 {
			fmt.Fprintf(bw, "%d %d %d\n", r.Commodity, r.Demand, r.Initial)
			continue
		}
		fmt.Fprintf(bw, "%d %d\n", r.Commodity, r.Demand)
	}
	return bw.Flush()
}
