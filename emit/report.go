// Package emit renders the generator's outputs: the plain-text table report
// and the Verilog lookup-table module. It formats values it is handed and
// does no numeric work of its own.
package emit

import (
	"fmt"
	"io"
)

// Report writes the table listing: a header, one line per iteration, then a
// blank line and the gain constant. With words == nil each angle is listed
// in radians; otherwise words holds one encoded value per angle and the
// listing shows the hex words instead.
func Report(w io.Writer, angles []float64, gain float64, words []uint32) error {
	if _, err := fmt.Fprintln(w, "# CORDIC Arctan LUT"); err != nil {
		return err
	}
	for i, a := range angles {
		var err error
		if words == nil {
			_, err = fmt.Fprintf(w, "iter %2d: atan(2^-%d) = %.12f rad\n", i, i, a)
		} else {
			_, err = fmt.Fprintf(w, "iter %2d: 0x%08X\n", i, words[i])
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n# CORDIC Gain K = %.12f\n", gain)
	return err
}
