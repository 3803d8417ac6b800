// Package export writes geometry and run outcomes to interchange formats:
// SVG for segment pictures, CSV for datasets, JSON for outcome dumps.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/mwichro/dealab/internal/geom"
)

// coordY projects a point onto its second coordinate; one-dimensional
// points draw at height zero.
func coordY(p geom.Point) float64 {
	if len(p) > 1 {
		return p[1]
	}
	return 0
}

// WriteSVG draws the segments of d as an SVG picture. Points with more than
// two coordinates are projected onto their first two.
func WriteSVG(w io.Writer, d *geom.DataOut, width, height int) error {
	segs := d.Segments()
	if len(segs) == 0 {
		return fmt.Errorf("svg: no segments to draw")
	}

	// Find bounds
	minX, maxX := segs[0].Start[0], segs[0].Start[0]
	minY, maxY := coordY(segs[0].Start), coordY(segs[0].Start)
	for _, s := range segs {
		for _, p := range []geom.Point{s.Start, s.End} {
			x, y := p[0], coordY(p)
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g stroke="#00ff00" stroke-width="1.5">
`, width, height, width, height))

	for _, s := range segs {
		x1 := (s.Start[0] - minX) / rangeX * float64(width)
		y1 := float64(height) - (coordY(s.Start)-minY)/rangeY*float64(height)
		x2 := (s.End[0] - minX) / rangeX * float64(width)
		y2 := float64(height) - (coordY(s.End)-minY)/rangeY*float64(height)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, x1, y1, x2, y2))
	}

	sb.WriteString("</g>\n</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
