package export_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mwichro/dealab/internal/export"
	"github.com/mwichro/dealab/internal/geom"
	"github.com/mwichro/dealab/internal/lab"
)

func triangle() *geom.DataOut {
	var d geom.DataOut
	d.BuildPatches([]geom.Segment{
		{Start: geom.Point{0, 0}, End: geom.Point{1, 0}},
		{Start: geom.Point{1, 0}, End: geom.Point{1, 1}},
		{Start: geom.Point{1, 1}, End: geom.Point{0, 0}},
	})
	d.AddDatasets([]string{"length", "midheight"}, [][]float64{
		{1, 0},
		{1, 0.5},
		{1.4142, 0.5},
	})
	return &d
}

var _ = Describe("WriteSVG", func() {
	It("draws one line per segment", func() {
		var buf bytes.Buffer
		Expect(export.WriteSVG(&buf, triangle(), 400, 300)).To(Succeed())

		svg := buf.String()
		Expect(svg).To(HavePrefix(`<?xml version="1.0"`))
		Expect(svg).To(ContainSubstring(`width="400" height="300"`))
		Expect(strings.Count(svg, "<line ")).To(Equal(3))
	})

	It("refuses an empty drawing", func() {
		var empty geom.DataOut
		var buf bytes.Buffer
		Expect(export.WriteSVG(&buf, &empty, 400, 300)).NotTo(Succeed())
	})
})

var _ = Describe("WriteCSV", func() {
	It("produces a parseable table with one row per segment", func() {
		var buf bytes.Buffer
		Expect(export.WriteCSV(&buf, triangle())).To(Succeed())

		records, err := csv.NewReader(&buf).ReadAll()
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(4))
		Expect(records[0]).To(Equal([]string{
			"segment", "x1", "y1", "x2", "y2", "length", "midheight",
		}))
		Expect(records[1][0]).To(Equal("0"))
		Expect(records[3][5]).To(Equal("1.4142"))
	})

	It("writes coordinate columns even without datasets", func() {
		var d geom.DataOut
		d.BuildPatches([]geom.Segment{
			{Start: geom.Point{0, 0}, End: geom.Point{2, 2}},
		})

		var buf bytes.Buffer
		Expect(export.WriteCSV(&buf, &d)).To(Succeed())

		records, err := csv.NewReader(&buf).ReadAll()
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(2))
		Expect(records[0]).To(HaveLen(5))
	})
})

var _ = Describe("WriteJSON", func() {
	It("exports both passing and failing outcomes", func() {
		outcomes, err := lab.NewRunner(nil).Run(context.Background(),
			[]string{"trace", "index"})
		Expect(err).NotTo(HaveOccurred())

		var buf bytes.Buffer
		Expect(export.WriteJSON(&buf, outcomes)).To(Succeed())

		var decoded []map[string]any
		Expect(json.Unmarshal(buf.Bytes(), &decoded)).To(Succeed())
		Expect(decoded).To(HaveLen(2))

		Expect(decoded[0]["scenario"]).To(Equal("trace"))
		Expect(decoded[0]["ok"]).To(BeTrue())
		Expect(decoded[0]).NotTo(HaveKey("kind"))

		Expect(decoded[1]["scenario"]).To(Equal("index"))
		Expect(decoded[1]["ok"]).To(BeFalse())
		Expect(decoded[1]["kind"]).To(Equal("IndexRange"))
		Expect(decoded[1]["report"]).To(ContainSubstring("half-open range"))
		Expect(decoded[1]["line"]).To(BeNumerically(">", 0))
	})
})
