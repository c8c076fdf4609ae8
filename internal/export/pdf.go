package export

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/cellarhub/winestore/internal/models"
	"github.com/cellarhub/winestore/internal/store"
	"github.com/cellarhub/winestore/internal/util"
	srvErrors "github.com/cellarhub/winestore/pkg/errors"
)

// PDFVariant selects between the aggregate-only report and the full
// bottle listing.
type PDFVariant string

const (
	PDFStatistical PDFVariant = "statistical"
	PDFDetailed    PDFVariant = "detailed"
)

// The core PDF fonts carry no glyphs for currency symbols beyond the
// dollar sign, so amounts are annotated with ISO-style codes instead.
var currencyReplacer = strings.NewReplacer(
	"₽", "RUB",
	"€", "EUR",
	"£", "GBP",
	"¥", "JPY",
)

// PDFExporter renders the collection into a paginated PDF document,
// either as summary statistics or as the full detailed listing.
type PDFExporter struct {
	source   DataSource
	variant  PDFVariant
	company  string
	operator string
}

func NewPDFExporter(source DataSource, variant PDFVariant, company, operator string) *PDFExporter {
	return &PDFExporter{
		source:   source,
		variant:  variant,
		company:  company,
		operator: operator,
	}
}

// Export fetches one snapshot ordered newest-first and writes the
// document to path. The file appears only after rendering succeeded.
func (e *PDFExporter) Export(ctx context.Context, path string) error {
	data, err := e.source.ReportSnapshot(ctx, store.OrderNewestFirst)
	if err != nil {
		return srvErrors.NewExportError("pdf", err)
	}

	doc := e.render(data)
	if doc.Err() {
		return srvErrors.NewExportError("pdf", doc.Error())
	}
	if err := doc.OutputFileAndClose(path); err != nil {
		return srvErrors.NewExportError("pdf", err)
	}
	return nil
}

func (e *PDFExporter) render(data *models.ReportData) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")

	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() == 1 {
			return
		}
		pdf.SetFont("Arial", "B", 10)
		pdf.SetTextColor(54, 96, 146)
		pdf.CellFormat(0, 8, safeText(fmt.Sprintf("%s - Wine Collection Report", e.company)),
			"B", 1, "L", false, 0, "")
		pdf.Ln(4)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.SetAutoPageBreak(true, 15)

	e.titlePage(pdf, data)

	if len(data.Rows) == 0 {
		pdf.AddPage()
		pdf.SetFont("Arial", "", 12)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(0, 10, "No data available for report", "", 1, "C", false, 0, "")
		return pdf
	}

	switch e.variant {
	case PDFDetailed:
		e.detailedPages(pdf, data)
	default:
		e.statisticalPages(pdf, data)
	}
	return pdf
}

func (e *PDFExporter) titlePage(pdf *fpdf.Fpdf, data *models.ReportData) {
	pdf.AddPage()
	pdf.Ln(40)

	pdf.SetFont("Arial", "B", 24)
	pdf.SetTextColor(54, 96, 146)
	pdf.CellFormat(0, 14, safeText(e.company), "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 18)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 12, "Wine Collection Report", "", 1, "C", false, 0, "")

	variantTitle := "Statistical summary"
	if e.variant == PDFDetailed {
		variantTitle = "Detailed listing"
	}
	pdf.SetFont("Arial", "", 14)
	pdf.CellFormat(0, 10, variantTitle, "", 1, "C", false, 0, "")
	pdf.Ln(20)

	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(0, 8, fmt.Sprintf("Generated: %s", time.Now().Format("02.01.2006 15:04")),
		"", 1, "C", false, 0, "")
	if e.operator != "" {
		pdf.CellFormat(0, 8, safeText(fmt.Sprintf("Operator: %s", e.operator)),
			"", 1, "C", false, 0, "")
	}
	pdf.CellFormat(0, 8, fmt.Sprintf("Bottles in collection: %d", len(data.Rows)),
		"", 1, "C", false, 0, "")
}

func sectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(54, 96, 146)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func (e *PDFExporter) statisticalPages(pdf *fpdf.Fpdf, data *models.ReportData) {
	pdf.AddPage()

	sectionTitle(pdf, "1. General indicators")
	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(0, 0, 0)
	minPrice, maxPrice := data.PriceRange()
	lines := []string{
		fmt.Sprintf("Total bottles: %d", len(data.Rows)),
		fmt.Sprintf("Total collection value: %s RUB", util.FormatMoney(data.TotalValue())),
		fmt.Sprintf("Average bottle price: %s RUB", util.FormatMoney(data.AveragePrice())),
		fmt.Sprintf("Price range: %s - %s RUB", util.FormatMoney(minPrice), util.FormatMoney(maxPrice)),
		fmt.Sprintf("Distinct producers: %d", data.DistinctProducers()),
		fmt.Sprintf("Distinct regions: %d", data.DistinctRegions()),
	}
	for _, l := range lines {
		pdf.MultiCell(0, 8, safeText(l), "", "L", false)
	}
	pdf.Ln(6)

	sectionTitle(pdf, "2. Distribution by region")
	regionRows := make([][]string, 0, len(data.Regions))
	for _, s := range data.Regions {
		regionRows = append(regionRows, []string{
			util.Ellipsis(s.Region, 20),
			fmt.Sprintf("%d", s.Count),
			util.FormatMoney(util.Round(s.AvgPrice)),
			util.FormatMoney(s.TotalValue),
		})
	}
	statTable(pdf,
		[]string{"Region", "Bottles", "Avg price", "Total value"},
		[]float64{60, 25, 40, 40},
		regionRows)
	pdf.Ln(6)

	sectionTitle(pdf, "3. Distribution by vintage")
	vintages := make([]models.VintageStat, len(data.Vintages))
	copy(vintages, data.Vintages)
	sort.Slice(vintages, func(i, j int) bool { return vintages[i].Vintage < vintages[j].Vintage })
	vintageRows := make([][]string, 0, len(vintages))
	for _, s := range vintages {
		vintageRows = append(vintageRows, []string{
			fmt.Sprintf("%d", s.Vintage),
			fmt.Sprintf("%d", s.Count),
			util.FormatMoney(util.Round(s.AvgPrice)),
		})
	}
	statTable(pdf,
		[]string{"Vintage", "Bottles", "Avg price"},
		[]float64{40, 30, 50},
		vintageRows)
	pdf.Ln(6)

	sectionTitle(pdf, "4. Most expensive bottles")
	top := make([]models.BottleRow, len(data.Rows))
	copy(top, data.Rows)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Price > top[j].Price })
	if len(top) > 5 {
		top = top[:5]
	}
	topRows := make([][]string, 0, len(top))
	for _, r := range top {
		year := "N/A"
		if r.Vintage != 0 {
			year = fmt.Sprintf("%d", r.Vintage)
		}
		topRows = append(topRows, []string{
			util.Ellipsis(r.Name, 30),
			util.Ellipsis(r.Producer, 25),
			year,
			util.FormatMoney(r.Price),
		})
	}
	statTable(pdf,
		[]string{"Wine", "Producer", "Vintage", "Price"},
		[]float64{60, 50, 20, 35},
		topRows)
}

func statTable(pdf *fpdf.Fpdf, headers []string, widths []float64, rows [][]string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(68, 114, 196)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for i, row := range rows {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		for c, v := range row {
			align := "L"
			if c > 0 {
				align = "R"
			}
			pdf.CellFormat(widths[c], 7, safeText(v), "1", 0, align, true, 0, "")
		}
		pdf.Ln(-1)
	}
}

var detailWidths = []float64{12, 36, 30, 12, 32, 24, 44}

func (e *PDFExporter) detailedPages(pdf *fpdf.Fpdf, data *models.ReportData) {
	pdf.AddPage()
	sectionTitle(pdf, "Full collection listing")

	headers := []string{"ID", "Wine", "Producer", "Year", "Region", "Price", "Location"}
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(68, 114, 196)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(detailWidths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for i, r := range data.Rows {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		year := "N/A"
		if r.Vintage != 0 {
			year = fmt.Sprintf("%d", r.Vintage)
		}
		price := "N/A"
		if r.Price != 0 {
			price = util.FormatMoney(r.Price)
		}
		location := strings.TrimSpace(strings.Join(
			nonEmpty(r.Shelf, r.Rack, r.Cellar), "/"))
		if location == "" {
			location = "-"
		}

		cells := []string{
			fmt.Sprintf("%d", r.ID),
			util.Ellipsis(r.Name, 30),
			util.Ellipsis(r.Producer, 25),
			year,
			util.Ellipsis(r.Region, 20),
			price,
			util.Ellipsis(location, 20),
		}
		aligns := []string{"C", "L", "L", "C", "L", "R", "L"}
		for c, v := range cells {
			pdf.CellFormat(detailWidths[c], 7, safeText(v), "1", 0, aligns[c], true, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 11)
	pdf.SetTextColor(54, 96, 146)
	pdf.CellFormat(0, 8, "Summary", "T", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)
	summary := []string{
		fmt.Sprintf("Bottles listed: %d", len(data.Rows)),
		fmt.Sprintf("Total value: %s RUB", util.FormatMoney(data.TotalValue())),
		fmt.Sprintf("Average price: %s RUB", util.FormatMoney(data.AveragePrice())),
	}
	for _, l := range summary {
		pdf.CellFormat(0, 6, safeText(l), "", 1, "L", false, 0, "")
	}
}

func nonEmpty(parts ...string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func safeText(s string) string {
	return currencyReplacer.Replace(s)
}
