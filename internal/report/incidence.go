package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/katalvlaran/crndecomp/crn"
	"github.com/katalvlaran/crndecomp/matrix"
)

// WriteIncidence prints ia as a table: one row per complex, one column per
// pseudo-reaction.
func WriteIncidence(w io.Writer, enc *crn.Encoding, ia *matrix.Dense) error {
	if enc == nil || ia == nil {
		return fmt.Errorf("report: incidence: %w", crn.ErrNilEncoding)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "\t")
	for j := 0; j < ia.Cols(); j++ {
		fmt.Fprintf(tw, "%s\t", crn.Label(j))
	}
	fmt.Fprintln(tw)
	for i := 0; i < ia.Rows(); i++ {
		fmt.Fprintf(tw, "%s\t", enc.Complexes.Format(i, enc.Species))
		row, err := ia.Row(i)
		if err != nil {
			return err
		}
		for _, v := range row {
			fmt.Fprintf(tw, "%s\t", strconv.FormatFloat(v, 'g', -1, 64))
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
