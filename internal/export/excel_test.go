package export_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	"github.com/cellarhub/winestore/internal/export"
	"github.com/cellarhub/winestore/internal/models"
	"github.com/cellarhub/winestore/internal/store"
	srvErrors "github.com/cellarhub/winestore/pkg/errors"
)

type fakeSource struct {
	data  *models.ReportData
	err   error
	order store.Order
	calls int
}

func (f *fakeSource) ReportSnapshot(_ context.Context, order store.Order) (*models.ReportData, error) {
	f.calls++
	f.order = order
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

func sampleReportData() *models.ReportData {
	date := time.Date(2023, 6, 10, 0, 0, 0, 0, time.UTC)
	return &models.ReportData{
		Rows: []models.BottleRow{
			{
				Bottle: models.Bottle{
					ID: 2, Name: "Sassicaia", Producer: "Tenuta San Guido",
					Vintage: 2019, Region: "Tuscany", Price: 28000,
					PurchaseDate: &date,
				},
				Shelf: "A", Rack: "1", Cellar: "Main",
			},
			{
				Bottle: models.Bottle{
					ID: 1, Name: "Chianti Classico", Producer: "Antinori",
					Vintage: 2018, Region: "Tuscany", Price: 2500,
				},
			},
			{
				Bottle: models.Bottle{
					ID: 3, Name: "Rioja Reserva", Producer: "La Rioja Alta",
					Vintage: 2015, Region: "Rioja", Price: 4200,
				},
				Shelf: "B", Rack: "2", Cellar: "Main",
			},
		},
		Regions: []models.RegionStat{
			{Region: "Tuscany", Count: 2, AvgPrice: 15250, TotalValue: 30500},
			{Region: "Rioja", Count: 1, AvgPrice: 4200, TotalValue: 4200},
		},
		Vintages: []models.VintageStat{
			{Vintage: 2019, Count: 1, AvgPrice: 28000},
			{Vintage: 2018, Count: 1, AvgPrice: 2500},
			{Vintage: 2015, Count: 1, AvgPrice: 4200},
		},
		PriceBuckets: []models.PriceBucketStat{
			{Bucket: models.PriceBucketTop, Count: 1, TotalValue: 28000},
			{Bucket: models.PriceBucketMid, Count: 2, TotalValue: 6700},
		},
		Producers: []models.ProducerStat{
			{Producer: "Tenuta San Guido", Count: 1, AvgPrice: 28000, TotalValue: 28000},
			{Producer: "La Rioja Alta", Count: 1, AvgPrice: 4200, TotalValue: 4200},
			{Producer: "Antinori", Count: 1, AvgPrice: 2500, TotalValue: 2500},
		},
	}
}

var _ = Describe("ExcelExporter", func() {
	var (
		source   *fakeSource
		exporter *export.ExcelExporter
		path     string
	)

	BeforeEach(func() {
		source = &fakeSource{data: sampleReportData()}
		exporter = export.NewExcelExporter(source, "Vinotheque", "Claire Fontaine")
		path = filepath.Join(GinkgoT().TempDir(), "report.xlsx")
	})

	It("requests a single snapshot ordered for export", func() {
		Expect(exporter.Export(context.Background(), path)).To(Succeed())
		Expect(source.calls).To(Equal(1))
		Expect(source.order).To(Equal(store.OrderVintagePriceDesc))
	})

	It("writes the three sheets", func() {
		Expect(exporter.Export(context.Background(), path)).To(Succeed())

		f, err := excelize.OpenFile(path)
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		Expect(f.GetSheetList()).To(ConsistOf("Data", "Analytics", "Visualization"))
	})

	It("lays out the data sheet with headers at row five and rows below", func() {
		Expect(exporter.Export(context.Background(), path)).To(Succeed())

		f, err := excelize.OpenFile(path)
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		banner, err := f.GetCellValue("Data", "A1")
		Expect(err).NotTo(HaveOccurred())
		Expect(banner).To(ContainSubstring("Vinotheque"))

		header, err := f.GetCellValue("Data", "A5")
		Expect(err).NotTo(HaveOccurred())
		Expect(header).To(Equal("ID"))

		name, err := f.GetCellValue("Data", "B6")
		Expect(err).NotTo(HaveOccurred())
		Expect(name).To(Equal("Sassicaia"))

		date, err := f.GetCellValue("Data", "G6")
		Expect(err).NotTo(HaveOccurred())
		Expect(date).To(Equal("10.06.2023"))

		shelf, err := f.GetCellValue("Data", "H6")
		Expect(err).NotTo(HaveOccurred())
		Expect(shelf).To(Equal("A"))
	})

	It("renders the aggregate tables on the analytics sheet", func() {
		Expect(exporter.Export(context.Background(), path)).To(Succeed())

		f, err := excelize.OpenFile(path)
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		rows, err := f.GetRows("Analytics")
		Expect(err).NotTo(HaveOccurred())

		flat := []string{}
		for _, r := range rows {
			flat = append(flat, r...)
		}
		Expect(flat).To(ContainElement("SUMMARY BY REGION"))
		Expect(flat).To(ContainElement("Tuscany"))
		Expect(flat).To(ContainElement("PRICE RANGE STATISTICS"))
		Expect(flat).To(ContainElement(models.PriceBucketTop))
		Expect(flat).To(ContainElement("COMPUTED INDICATORS"))
		Expect(flat).To(ContainElement("ANALYTICS CONCLUSIONS"))
	})

	It("renders key metrics and the vintage table on the visualization sheet", func() {
		Expect(exporter.Export(context.Background(), path)).To(Succeed())

		f, err := excelize.OpenFile(path)
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		rows, err := f.GetRows("Visualization")
		Expect(err).NotTo(HaveOccurred())

		flat := []string{}
		for _, r := range rows {
			flat = append(flat, r...)
		}
		Expect(flat).To(ContainElement("KEY COLLECTION METRICS"))
		Expect(flat).To(ContainElement("Total bottles"))
		Expect(flat).To(ContainElement("Vintage"))
		Expect(flat).To(ContainElement("2019"))
	})

	Context("with an empty collection", func() {
		BeforeEach(func() {
			source.data = &models.ReportData{}
		})

		It("still produces a valid workbook with notices", func() {
			Expect(exporter.Export(context.Background(), path)).To(Succeed())

			f, err := excelize.OpenFile(path)
			Expect(err).NotTo(HaveOccurred())
			defer f.Close()

			notice, err := f.GetCellValue("Data", "A6")
			Expect(err).NotTo(HaveOccurred())
			Expect(notice).To(Equal("No data available"))

			rows, err := f.GetRows("Analytics")
			Expect(err).NotTo(HaveOccurred())
			flat := []string{}
			for _, r := range rows {
				flat = append(flat, r...)
			}
			Expect(flat).To(ContainElement("No data available"))
		})

		It("keeps the filter row on the data sheet", func() {
			Expect(exporter.Export(context.Background(), path)).To(Succeed())

			f, err := excelize.OpenFile(path)
			Expect(err).NotTo(HaveOccurred())
			defer f.Close()

			filtered := false
			for _, dn := range f.GetDefinedName() {
				if dn.Name == "_xlnm._FilterDatabase" && strings.Contains(dn.RefersTo, "Data") {
					filtered = true
				}
			}
			Expect(filtered).To(BeTrue())
		})
	})

	Context("when the snapshot fails", func() {
		BeforeEach(func() {
			source.err = errors.New("connection reset")
		})

		It("returns an export error and writes no file", func() {
			err := exporter.Export(context.Background(), path)
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsExportError(err)).To(BeTrue())

			_, err = excelize.OpenFile(path)
			Expect(err).To(HaveOccurred())
		})
	})
})
