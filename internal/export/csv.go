package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/mwichro/dealab/internal/geom"
)

// WriteCSV writes one row per segment: index, endpoint coordinates, then
// one column per dataset name.
func WriteCSV(w io.Writer, d *geom.DataOut) error {
	segs := d.Segments()
	if len(segs) == 0 {
		return fmt.Errorf("csv: no segments to write")
	}

	var sb strings.Builder
	sb.WriteString("segment,x1,y1,x2,y2")
	for _, name := range d.Names() {
		sb.WriteString(",")
		sb.WriteString(name)
	}
	sb.WriteString("\n")

	values := d.Values()
	for i, s := range segs {
		fmt.Fprintf(&sb, "%d,%g,%g,%g,%g",
			i, s.Start[0], coordY(s.Start), s.End[0], coordY(s.End))
		if i < len(values) {
			for _, v := range values[i] {
				fmt.Fprintf(&sb, ",%g", v)
			}
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
