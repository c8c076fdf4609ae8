package models

// ChartSeries is a chart-ready category/value projection for the
// dashboard renderer.
type ChartSeries struct {
	Labels []string
	Values []float64
}

// VintageCount is one per-vintage bucket of the statistics snapshot,
// kept as a slice so the ascending year order survives.
type VintageCount struct {
	Vintage int
	Count   int
}

// Statistics is the aggregate snapshot backing the dashboard. All
// collections are non-nil even when the store is empty.
type Statistics struct {
	TotalBottles int
	InStorage    int
	Consumed     int
	TotalValue   float64
	Regions      map[string]int
	Vintages     []VintageCount

	// LineSeries plots bottle count by vintage year, PieSeries bottle
	// count by region.
	LineSeries ChartSeries
	PieSeries  ChartSeries
}

// EmptyStatistics returns a zeroed snapshot with every collection
// initialized, so callers never see nil maps or slices.
func EmptyStatistics() *Statistics {
	return &Statistics{
		Regions:  map[string]int{},
		Vintages: []VintageCount{},
		LineSeries: ChartSeries{
			Labels: []string{},
			Values: []float64{},
		},
		PieSeries: ChartSeries{
			Labels: []string{},
			Values: []float64{},
		},
	}
}
