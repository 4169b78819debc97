package export_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fdlab/internal/export"
	"github.com/san-kum/fdlab/internal/fdiff"
)

var _ = Describe("Export", func() {
	var report *fdiff.Report

	BeforeEach(func() {
		p := fdiff.DefaultParams()
		p.Range.NumPoints = 10
		var err error
		report, err = fdiff.Analyze(fdiff.Sine(), p)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("WriteCSV", func() {
		It("writes a header and one row per record", func() {
			var buf bytes.Buffer
			Expect(export.WriteCSV(&buf, report)).To(Succeed())

			rows, err := csv.NewReader(&buf).ReadAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1 + 2*10))
			Expect(rows[0]).To(Equal([]string{"h", "method", "approx", "actual", "truncation", "rounding", "total"}))
			Expect(rows[1][1]).To(Equal("forward"))
			Expect(rows[len(rows)-1][1]).To(Equal("central"))
		})

		It("writes total as truncation plus rounding", func() {
			var buf bytes.Buffer
			Expect(export.WriteCSV(&buf, report)).To(Succeed())
			rows, _ := csv.NewReader(&buf).ReadAll()

			for _, row := range rows[1:] {
				trunc, _ := strconv.ParseFloat(row[4], 64)
				round, _ := strconv.ParseFloat(row[5], 64)
				total, _ := strconv.ParseFloat(row[6], 64)
				Expect(total).To(BeNumerically("~", trunc+round, 1e-12*(trunc+round)))
			}
		})

		It("orders each method by ascending h", func() {
			var buf bytes.Buffer
			Expect(export.WriteCSV(&buf, report)).To(Succeed())
			rows, _ := csv.NewReader(&buf).ReadAll()

			prev := 0.0
			for _, row := range rows[1:11] {
				h, _ := strconv.ParseFloat(row[0], 64)
				Expect(h).To(BeNumerically(">", prev))
				prev = h
			}
		})
	})

	Describe("WriteJSON", func() {
		It("writes the documented fields", func() {
			var buf bytes.Buffer
			Expect(export.WriteJSON(&buf, report)).To(Succeed())

			var doc map[string]any
			Expect(json.Unmarshal(buf.Bytes(), &doc)).To(Succeed())
			for _, key := range []string{"id", "timestamp", "target", "x0", "epsilon", "range", "derivatives", "optimum", "forward", "central"} {
				Expect(doc).To(HaveKey(key))
			}
			Expect(doc["target"]).To(Equal("sin"))
			Expect(doc["forward"]).To(HaveLen(10))
		})

		It("stamps a unique run id", func() {
			a := export.NewDocument(report)
			b := export.NewDocument(report)
			Expect(uuid.Parse(a.ID)).Error().NotTo(HaveOccurred())
			Expect(a.ID).NotTo(Equal(b.ID))
		})

		It("carries the analytic optimum", func() {
			doc := export.NewDocument(report)
			Expect(doc.Optimum.Forward.H).To(Equal(report.Optimum.Forward.H))
			Expect(doc.Optimum.Central.MinTotalError).To(Equal(report.Optimum.Central.MinTotalError))
		})

		It("encodes non-finite values as null", func() {
			p := fdiff.DefaultParams()
			p.Range = fdiff.StepRange{MinExp: -4, MaxExp: 0, NumPoints: 5}
			r, err := fdiff.Analyze(fdiff.Logarithm(), p)
			Expect(err).NotTo(HaveOccurred())

			var buf bytes.Buffer
			Expect(export.WriteJSON(&buf, r)).To(Succeed())
			Expect(buf.String()).To(ContainSubstring("null"))
		})
	})

	Describe("WriteSVG", func() {
		It("draws one panel per method with three series and a marker", func() {
			var buf bytes.Buffer
			Expect(export.WriteSVG(&buf, report, export.DefaultSVGWidth, export.DefaultSVGHeight)).To(Succeed())
			out := buf.String()

			Expect(out).To(HavePrefix("<?xml"))
			Expect(out).To(ContainSubstring(`<g id="forward"`))
			Expect(out).To(ContainSubstring(`<g id="central"`))
			Expect(strings.Count(out, "<path ")).To(Equal(6))
			Expect(strings.Count(out, `class="optimum"`)).To(Equal(2))
		})

		It("rejects sizes with no room to plot", func() {
			var buf bytes.Buffer
			Expect(export.WriteSVG(&buf, report, 100, 100)).To(HaveOccurred())
			Expect(buf.Len()).To(BeZero())
		})
	})
})
