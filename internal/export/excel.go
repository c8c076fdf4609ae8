package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/cellarhub/winestore/internal/models"
	"github.com/cellarhub/winestore/internal/store"
	"github.com/cellarhub/winestore/internal/util"
	srvErrors "github.com/cellarhub/winestore/pkg/errors"
)

const (
	sheetData          = "Data"
	sheetAnalytics     = "Analytics"
	sheetVisualization = "Visualization"

	noDataNotice = "No data available"
)

var dataColumnWidths = []float64{8, 25, 20, 10, 15, 12, 12, 8, 8, 15}

// ExcelExporter renders the three-sheet workbook: the full row dump, the
// analytics tables with two charts, and the key-metric visualization.
type ExcelExporter struct {
	source   DataSource
	company  string
	operator string
}

func NewExcelExporter(source DataSource, company, operator string) *ExcelExporter {
	return &ExcelExporter{
		source:   source,
		company:  company,
		operator: operator,
	}
}

// Export fetches one consistent snapshot ordered for export (vintage
// then price, descending) and writes the workbook to path. On any
// failure no file is presented as complete.
func (e *ExcelExporter) Export(ctx context.Context, path string) error {
	data, err := e.source.ReportSnapshot(ctx, store.OrderVintagePriceDesc)
	if err != nil {
		return srvErrors.NewExportError("excel", err)
	}

	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	st, err := newExcelStyles(f)
	if err != nil {
		return srvErrors.NewExportError("excel", err)
	}

	if err := e.writeDataSheet(f, st, data); err != nil {
		return srvErrors.NewExportError("excel", err)
	}
	if err := e.writeAnalyticsSheet(f, st, data); err != nil {
		return srvErrors.NewExportError("excel", err)
	}
	if err := e.writeVisualizationSheet(f, st, data); err != nil {
		return srvErrors.NewExportError("excel", err)
	}

	if err := f.SaveAs(path); err != nil {
		return srvErrors.NewExportError("excel", err)
	}
	return nil
}

type excelStyles struct {
	title    int
	subtitle int
	header   int
	normal   int
	number   int
	currency int
	center   int
}

func thinBorder() []excelize.Border {
	sides := []string{"left", "top", "right", "bottom"}
	borders := make([]excelize.Border, 0, len(sides))
	for _, s := range sides {
		borders = append(borders, excelize.Border{Type: s, Color: "000000", Style: 1})
	}
	return borders
}

func newExcelStyles(f *excelize.File) (*excelStyles, error) {
	st := &excelStyles{}
	numFmt := "#,##0.00"

	var err error
	st.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"366092"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, err
	}

	st.subtitle, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "1F497D"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"DCE6F1"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, err
	}

	st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, err
	}

	st.normal, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "top"},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, err
	}

	st.number, err = f.NewStyle(&excelize.Style{
		Alignment:    &excelize.Alignment{Horizontal: "right"},
		Border:       thinBorder(),
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return nil, err
	}

	st.currency, err = f.NewStyle(&excelize.Style{
		Alignment:    &excelize.Alignment{Horizontal: "right"},
		Border:       thinBorder(),
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return nil, err
	}

	st.center, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, err
	}

	return st, nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func (e *ExcelExporter) writeDataSheet(f *excelize.File, st *excelStyles, data *models.ReportData) error {
	if err := f.SetSheetName(f.GetSheetName(0), sheetData); err != nil {
		return err
	}

	banner := fmt.Sprintf("%s - WINE COLLECTION MANAGEMENT", e.company)
	if err := writeMergedRow(f, sheetData, 1, 10, banner, st.title); err != nil {
		return err
	}
	operatorLine := ""
	if e.operator != "" {
		operatorLine = fmt.Sprintf("Operator: %s", e.operator)
	}
	if err := writeMergedRow(f, sheetData, 2, 10, operatorLine, st.subtitle); err != nil {
		return err
	}
	generated := fmt.Sprintf("Report generated: %s", time.Now().Format("02.01.2006 15:04"))
	if err := writeMergedRow(f, sheetData, 3, 10, generated, st.center); err != nil {
		return err
	}

	headers := []string{
		"ID", "Wine", "Producer", "Vintage", "Region",
		"Purchase price", "Purchase date", "Shelf", "Rack", "Cellar",
	}
	const headerRow = 5
	for i, h := range headers {
		c := cell(i+1, headerRow)
		if err := f.SetCellValue(sheetData, c, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetData, c, c, st.header); err != nil {
			return err
		}
	}

	for w := range dataColumnWidths {
		colName, _ := excelize.ColumnNumberToName(w + 1)
		if err := f.SetColWidth(sheetData, colName, colName, dataColumnWidths[w]); err != nil {
			return err
		}
	}

	if err := f.SetPanes(sheetData, &excelize.Panes{
		Freeze:      true,
		YSplit:      headerRow,
		TopLeftCell: cell(1, headerRow+1),
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	if len(data.Rows) == 0 {
		if err := f.SetCellValue(sheetData, cell(1, headerRow+1), noDataNotice); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetData, cell(1, headerRow+1), cell(1, headerRow+1), st.normal); err != nil {
			return err
		}
		// the filter row is present even with nothing to filter
		headerRange := fmt.Sprintf("%s:%s", cell(1, headerRow), cell(len(headers), headerRow))
		return f.AutoFilter(sheetData, headerRange, nil)
	}

	for i, row := range data.Rows {
		r := headerRow + 1 + i
		date := ""
		if row.PurchaseDate != nil {
			date = row.PurchaseDate.Format("02.01.2006")
		}
		values := []any{
			row.ID, row.Name, row.Producer, row.Vintage, row.Region,
			row.Price, date, row.Shelf, row.Rack, row.Cellar,
		}
		styles := []int{
			st.number, st.normal, st.normal, st.number, st.normal,
			st.currency, st.center, st.normal, st.normal, st.normal,
		}
		for col := range values {
			c := cell(col+1, r)
			if err := f.SetCellValue(sheetData, c, values[col]); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheetData, c, c, styles[col]); err != nil {
				return err
			}
		}
	}

	// autofilter spans the header and every data row, nothing more
	filterRange := fmt.Sprintf("%s:%s", cell(1, headerRow), cell(len(headers), headerRow+len(data.Rows)))
	return f.AutoFilter(sheetData, filterRange, nil)
}

func (e *ExcelExporter) writeAnalyticsSheet(f *excelize.File, st *excelStyles, data *models.ReportData) error {
	if _, err := f.NewSheet(sheetAnalytics); err != nil {
		return err
	}

	row := 1
	if err := writeMergedRow(f, sheetAnalytics, row, 7, "WINE COLLECTION ANALYTICS", st.title); err != nil {
		return err
	}
	row++
	if err := writeMergedRow(f, sheetAnalytics, row, 7, "Summary tables and key metrics", st.subtitle); err != nil {
		return err
	}
	row += 2

	if len(data.Regions) == 0 {
		if err := f.SetCellValue(sheetAnalytics, cell(1, row), noDataNotice); err != nil {
			return err
		}
		return f.SetCellStyle(sheetAnalytics, cell(1, row), cell(1, row), st.normal)
	}

	// region summary table; the chart below references these rows, so
	// the bounds are captured at write time
	if err := writeCell(f, sheetAnalytics, 1, row, "SUMMARY BY REGION", st.header); err != nil {
		return err
	}
	row++
	regionHeaders := []string{"Region", "Bottles", "Average price", "Total value"}
	for i, h := range regionHeaders {
		if err := writeCell(f, sheetAnalytics, i+1, row, h, st.header); err != nil {
			return err
		}
	}
	row++
	regionStart := row
	for _, s := range data.Regions {
		if err := writeCell(f, sheetAnalytics, 1, row, s.Region, st.normal); err != nil {
			return err
		}
		if err := writeCell(f, sheetAnalytics, 2, row, s.Count, st.number); err != nil {
			return err
		}
		if err := writeCell(f, sheetAnalytics, 3, row, util.Round(s.AvgPrice), st.currency); err != nil {
			return err
		}
		if err := writeCell(f, sheetAnalytics, 4, row, s.TotalValue, st.currency); err != nil {
			return err
		}
		row++
	}
	regionEnd := row - 1
	row += 2

	if err := writeCell(f, sheetAnalytics, 1, row, "PRICE RANGE STATISTICS", st.header); err != nil {
		return err
	}
	row++
	bucketHeaders := []string{"Price range", "Bottles", "Total value"}
	for i, h := range bucketHeaders {
		if err := writeCell(f, sheetAnalytics, i+1, row, h, st.header); err != nil {
			return err
		}
	}
	row++
	bucketStart := row
	for _, s := range data.PriceBuckets {
		if err := writeCell(f, sheetAnalytics, 1, row, s.Bucket, st.normal); err != nil {
			return err
		}
		if err := writeCell(f, sheetAnalytics, 2, row, s.Count, st.number); err != nil {
			return err
		}
		if err := writeCell(f, sheetAnalytics, 3, row, s.TotalValue, st.currency); err != nil {
			return err
		}
		row++
	}
	bucketEnd := row - 1
	row += 2

	if err := writeCell(f, sheetAnalytics, 1, row, "COMPUTED INDICATORS", st.header); err != nil {
		return err
	}
	row++

	totalBottles := len(data.Rows)
	totalValue := data.TotalValue()
	avgPrice := data.AveragePrice()
	minPrice, maxPrice := data.PriceRange()

	indicators := []struct {
		label string
		value any
		style int
	}{
		{"Total bottles:", totalBottles, st.number},
		{"Total collection value:", totalValue, st.currency},
		{"Average bottle price:", avgPrice, st.currency},
		{"Most expensive bottle:", maxPrice, st.currency},
		{"Most affordable bottle:", minPrice, st.currency},
		{"Price spread:", maxPrice - minPrice, st.currency},
	}
	for _, ind := range indicators {
		if err := writeCell(f, sheetAnalytics, 1, row, ind.label, st.normal); err != nil {
			return err
		}
		if err := writeCell(f, sheetAnalytics, 2, row, ind.value, ind.style); err != nil {
			return err
		}
		row++
	}
	row += 2

	if err := writeCell(f, sheetAnalytics, 1, row, "ANALYTICS CONCLUSIONS", st.header); err != nil {
		return err
	}
	row++

	for _, line := range analyticsConclusions(data) {
		if err := writeMergedRange(f, sheetAnalytics, row, 1, 5, line, st.normal); err != nil {
			return err
		}
		row++
	}

	if err := f.SetColWidth(sheetAnalytics, "A", "A", 20); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetAnalytics, "B", "D", 15); err != nil {
		return err
	}

	return e.addAnalyticsCharts(f, regionStart, regionEnd, bucketStart, bucketEnd)
}

// analyticsConclusions builds the narrative bullets from the top regions
// and price buckets. Money amounts here are text, so they carry
// thousands separators.
func analyticsConclusions(data *models.ReportData) []string {
	topRegions := make([]string, 0, 3)
	for _, s := range data.Regions {
		if len(topRegions) == 3 {
			break
		}
		topRegions = append(topRegions, s.Region)
	}
	topBuckets := make([]string, 0, 2)
	for _, s := range data.PriceBuckets {
		if len(topBuckets) == 2 {
			break
		}
		topBuckets = append(topBuckets, s.Bucket)
	}
	if len(topRegions) == 0 {
		topRegions = []string{"no data"}
	}
	if len(topBuckets) == 0 {
		topBuckets = []string{"no data"}
	}

	minPrice, maxPrice := data.PriceRange()
	return []string{
		fmt.Sprintf("- The collection holds %d bottles with a total value of %s RUB.",
			len(data.Rows), util.FormatMoney(data.TotalValue())),
		fmt.Sprintf("- The average bottle price is %s RUB.", util.FormatMoney(data.AveragePrice())),
		fmt.Sprintf("- Most represented regions: %s.", strings.Join(topRegions, ", ")),
		fmt.Sprintf("- Dominant price ranges: %s.", strings.Join(topBuckets, ", ")),
		fmt.Sprintf("- Prices range from %s to %s RUB.",
			util.FormatMoney(minPrice), util.FormatMoney(maxPrice)),
		"- The collection spans multiple regions and price categories.",
	}
}

func (e *ExcelExporter) addAnalyticsCharts(f *excelize.File, regionStart, regionEnd, bucketStart, bucketEnd int) error {
	if regionEnd >= regionStart {
		if err := f.AddChart(sheetAnalytics, "F2", &excelize.Chart{
			Type: excelize.Col,
			Series: []excelize.ChartSeries{{
				Name:       "Bottle count",
				Categories: fmt.Sprintf("%s!$A$%d:$A$%d", sheetAnalytics, regionStart, regionEnd),
				Values:     fmt.Sprintf("%s!$B$%d:$B$%d", sheetAnalytics, regionStart, regionEnd),
			}},
			Title: []excelize.RichTextRun{{Text: "Bottles by region"}},
			XAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Region"}}},
			YAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Bottles"}}},
		}); err != nil {
			return err
		}
	}

	if bucketEnd >= bucketStart {
		if err := f.AddChart(sheetAnalytics, "F18", &excelize.Chart{
			Type: excelize.Pie,
			Series: []excelize.ChartSeries{{
				Name:       "Value share by price range",
				Categories: fmt.Sprintf("%s!$A$%d:$A$%d", sheetAnalytics, bucketStart, bucketEnd),
				Values:     fmt.Sprintf("%s!$C$%d:$C$%d", sheetAnalytics, bucketStart, bucketEnd),
			}},
			Title: []excelize.RichTextRun{{Text: "Value by price range"}},
			PlotArea: excelize.ChartPlotArea{
				ShowCatName: true,
				ShowPercent: true,
			},
		}); err != nil {
			return err
		}
	}
	return nil
}

func (e *ExcelExporter) writeVisualizationSheet(f *excelize.File, st *excelStyles, data *models.ReportData) error {
	if _, err := f.NewSheet(sheetVisualization); err != nil {
		return err
	}

	row := 1
	if err := writeMergedRow(f, sheetVisualization, row, 7, "COLLECTION DATA VISUALIZATION", st.title); err != nil {
		return err
	}
	row++
	if err := writeMergedRow(f, sheetVisualization, row, 7, "Charts and key figures", st.subtitle); err != nil {
		return err
	}
	row += 2

	if len(data.Rows) == 0 {
		if err := f.SetCellValue(sheetVisualization, cell(1, row), noDataNotice); err != nil {
			return err
		}
		return f.SetCellStyle(sheetVisualization, cell(1, row), cell(1, row), st.normal)
	}

	if err := writeCell(f, sheetVisualization, 1, row, "KEY COLLECTION METRICS", st.header); err != nil {
		return err
	}
	row++

	metrics := []struct {
		label string
		value any
		style int
		unit  string
	}{
		{"Total bottles", len(data.Rows), st.number, "pcs"},
		{"Total collection value", data.TotalValue(), st.currency, "RUB"},
		{"Average bottle price", data.AveragePrice(), st.currency, "RUB"},
		{"Distinct producers", data.DistinctProducers(), st.number, ""},
		{"Distinct regions", data.DistinctRegions(), st.number, ""},
	}
	for _, m := range metrics {
		if err := writeCell(f, sheetVisualization, 1, row, m.label, st.header); err != nil {
			return err
		}
		if err := writeCell(f, sheetVisualization, 2, row, m.value, m.style); err != nil {
			return err
		}
		if err := writeCell(f, sheetVisualization, 3, row, m.unit, st.normal); err != nil {
			return err
		}
		row++
	}
	row += 2

	if err := f.SetColWidth(sheetVisualization, "A", "A", 25); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetVisualization, "B", "B", 15); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetVisualization, "C", "C", 8); err != nil {
		return err
	}

	if len(data.Vintages) == 0 {
		return nil
	}

	vintageHeaders := []string{"Vintage", "Average price", "Bottles"}
	for i, h := range vintageHeaders {
		if err := writeCell(f, sheetVisualization, i+1, row, h, st.header); err != nil {
			return err
		}
	}
	row++
	vintageStart := row
	for _, s := range data.Vintages {
		if err := writeCell(f, sheetVisualization, 1, row, s.Vintage, st.number); err != nil {
			return err
		}
		if err := writeCell(f, sheetVisualization, 2, row, util.Round(s.AvgPrice), st.currency); err != nil {
			return err
		}
		if err := writeCell(f, sheetVisualization, 3, row, s.Count, st.number); err != nil {
			return err
		}
		row++
	}
	vintageEnd := row - 1

	return f.AddChart(sheetVisualization, "E2", &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{{
			Name:       "Average price by vintage",
			Categories: fmt.Sprintf("%s!$A$%d:$A$%d", sheetVisualization, vintageStart, vintageEnd),
			Values:     fmt.Sprintf("%s!$B$%d:$B$%d", sheetVisualization, vintageStart, vintageEnd),
			Marker:     excelize.ChartMarker{Symbol: "circle", Size: 6},
		}},
		Title: []excelize.RichTextRun{{Text: "Average price by vintage year"}},
		XAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Vintage"}}},
		YAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Average price"}}},
	})
}

func writeCell(f *excelize.File, sheet string, col, row int, value any, style int) error {
	c := cell(col, row)
	if err := f.SetCellValue(sheet, c, value); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, c, c, style)
}

func writeMergedRow(f *excelize.File, sheet string, row, width int, value any, style int) error {
	return writeMergedRange(f, sheet, row, 1, width, value, style)
}

func writeMergedRange(f *excelize.File, sheet string, row, fromCol, toCol int, value any, style int) error {
	from := cell(fromCol, row)
	to := cell(toCol, row)
	if err := f.MergeCell(sheet, from, to); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, from, value); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, from, to, style)
}
