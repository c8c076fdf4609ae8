package export_test

import (
	"bytes"
	"compress/zlib"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cellarhub/winestore/internal/export"
	"github.com/cellarhub/winestore/internal/models"
	"github.com/cellarhub/winestore/internal/store"
	srvErrors "github.com/cellarhub/winestore/pkg/errors"
)

// pdfText inflates every content stream of a rendered document so specs
// can assert on the text operators inside.
func pdfText(raw []byte) string {
	var out strings.Builder
	rest := raw
	for {
		i := bytes.Index(rest, []byte("stream"))
		if i < 0 {
			break
		}
		rest = bytes.TrimLeft(rest[i+len("stream"):], "\r\n")
		j := bytes.Index(rest, []byte("endstream"))
		if j < 0 {
			break
		}
		if r, err := zlib.NewReader(bytes.NewReader(rest[:j])); err == nil {
			if inflated, err := io.ReadAll(r); err == nil {
				out.Write(inflated)
			}
			r.Close()
		}
		rest = rest[j+len("endstream"):]
	}
	return out.String()
}

var _ = Describe("PDFExporter", func() {
	var (
		source *fakeSource
		path   string
	)

	BeforeEach(func() {
		source = &fakeSource{data: sampleReportData()}
		path = filepath.Join(GinkgoT().TempDir(), "report.pdf")
	})

	It("requests a single snapshot ordered newest-first", func() {
		exporter := export.NewPDFExporter(source, export.PDFStatistical, "Vinotheque", "Claire Fontaine")
		Expect(exporter.Export(context.Background(), path)).To(Succeed())
		Expect(source.calls).To(Equal(1))
		Expect(source.order).To(Equal(store.OrderNewestFirst))
	})

	It("writes a valid statistical document", func() {
		exporter := export.NewPDFExporter(source, export.PDFStatistical, "Vinotheque", "")
		Expect(exporter.Export(context.Background(), path)).To(Succeed())

		raw, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(raw[:5])).To(Equal("%PDF-"))
		Expect(len(raw)).To(BeNumerically(">", 1000))
	})

	It("writes a valid detailed document", func() {
		exporter := export.NewPDFExporter(source, export.PDFDetailed, "Vinotheque", "")
		Expect(exporter.Export(context.Background(), path)).To(Succeed())

		raw, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(raw[:5])).To(Equal("%PDF-"))
	})

	It("renders the region of every bottle in the detailed listing", func() {
		source.data.Rows = append(source.data.Rows, models.BottleRow{
			Bottle: models.Bottle{
				ID: 4, Name: "Pommard", Producer: "Domaine Leroy",
				Vintage: 2016, Region: "BurgundyReserveList", Price: 39000,
			},
			Shelf: "S9",
		})
		exporter := export.NewPDFExporter(source, export.PDFDetailed, "Vinotheque", "")
		Expect(exporter.Export(context.Background(), path)).To(Succeed())

		raw, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())

		text := pdfText(raw)
		Expect(text).To(ContainSubstring("Region"))
		Expect(text).To(ContainSubstring("BurgundyReserveList"))
		Expect(text).To(ContainSubstring("Tuscany"))
		Expect(text).To(ContainSubstring("S9"))
	})

	It("shortens long region names in the detailed listing", func() {
		source.data.Rows = []models.BottleRow{{
			Bottle: models.Bottle{
				ID: 1, Name: "Test", Producer: "Test",
				Region: "AnExtraordinarilyLongRegionName", Price: 100,
			},
		}}
		exporter := export.NewPDFExporter(source, export.PDFDetailed, "Vinotheque", "")
		Expect(exporter.Export(context.Background(), path)).To(Succeed())

		raw, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())

		text := pdfText(raw)
		Expect(text).To(ContainSubstring("AnExtraordinarily..."))
		Expect(text).NotTo(ContainSubstring("AnExtraordinarilyLongRegionName"))
	})

	It("renders a valid document for an empty collection", func() {
		source.data = &models.ReportData{}
		exporter := export.NewPDFExporter(source, export.PDFStatistical, "Vinotheque", "")
		Expect(exporter.Export(context.Background(), path)).To(Succeed())

		raw, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(raw[:5])).To(Equal("%PDF-"))
	})

	Context("when the snapshot fails", func() {
		BeforeEach(func() {
			source.err = errors.New("connection reset")
		})

		It("returns an export error and writes no file", func() {
			exporter := export.NewPDFExporter(source, export.PDFDetailed, "Vinotheque", "")
			err := exporter.Export(context.Background(), path)
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsExportError(err)).To(BeTrue())

			_, statErr := os.Stat(path)
			Expect(os.IsNotExist(statErr)).To(BeTrue())
		})
	})
})
