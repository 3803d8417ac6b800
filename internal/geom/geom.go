// Package geom holds the small geometry pipeline the failure scenarios and
// the export writers share: points, segments, and a DataOut builder that
// validates everything before a writer ever sees it.
package geom

import (
	"fmt"
	"io"

	"github.com/mwichro/dealab/internal/exc"
)

// Point is a position with an arbitrary number of coordinates.
type Point []float64

// Segment is a straight line between two points of equal dimension.
type Segment struct {
	Start Point
	End   Point
}

// InvalidSegment reports a segment whose endpoints cannot form a line.
var InvalidSegment = exc.Declare1("InvalidSegment", func(w io.Writer, i int) {
	fmt.Fprintf(w,
		"Segment %d cannot be used: its endpoints must be nonempty and of equal dimension.", i)
})

// DataOut collects segments and per-segment datasets for the writers in the
// export package. BuildPatches must run before AddDatasets; both validate
// their inputs and throw on malformed ones.
type DataOut struct {
	segments []Segment
	names    []string
	values   [][]float64
}

// BuildPatches validates the drawable segments and stores a copy.
func (d *DataOut) BuildPatches(segs []Segment) {
	for i, s := range segs {
		exc.AssertThrow(len(s.Start) > 0 && len(s.Start) == len(s.End),
			"len(s.Start) > 0 && len(s.Start) == len(s.End)", InvalidSegment(i))
	}
	d.segments = append([]Segment(nil), segs...)
}

// AddDatasets attaches one row of named values per segment.
func (d *DataOut) AddDatasets(names []string, rows [][]float64) {
	exc.AssertThrow(len(d.segments) > 0, "len(d.segments) > 0", exc.EmptyObject())
	exc.AssertThrow(len(rows) == len(d.segments), "len(rows) == len(d.segments)",
		exc.DimensionMismatch(len(rows), len(d.segments)))
	for _, row := range rows {
		exc.AssertThrow(len(row) == len(names), "len(row) == len(names)",
			exc.DimensionMismatch(len(row), len(names)))
	}
	d.names = append([]string(nil), names...)
	d.values = make([][]float64, len(rows))
	for i, row := range rows {
		d.values[i] = append([]float64(nil), row...)
	}
}

func (d *DataOut) Segments() []Segment { return d.segments }
func (d *DataOut) Names() []string     { return d.names }
func (d *DataOut) Values() [][]float64 { return d.values }
