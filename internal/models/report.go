package models

// Price bucket labels used by the aggregate queries and the renderers.
// The thresholds are fixed: <1000, 1000-5000, 5000-10000, >10000.
const (
	PriceBucketLow    = "Under 1000"
	PriceBucketMid    = "1000-5000"
	PriceBucketHigh   = "5000-10000"
	PriceBucketTop    = "Over 10000"
	PriceBucketLowMax = 1000.0
	PriceBucketMidMax = 5000.0
	PriceBucketTopMin = 10000.0
)

// RegionStat is one row of the by-region aggregate table.
type RegionStat struct {
	Region     string
	Count      int
	AvgPrice   float64
	TotalValue float64
}

// VintageStat is one row of the by-vintage aggregate table.
type VintageStat struct {
	Vintage  int
	Count    int
	AvgPrice float64
}

// PriceBucketStat is one row of the by-price-bucket aggregate table.
type PriceBucketStat struct {
	Bucket     string
	Count      int
	TotalValue float64
}

// ProducerStat is one row of the by-producer aggregate table.
type ProducerStat struct {
	Producer   string
	Count      int
	AvgPrice   float64
	TotalValue float64
}

// ReportData is the request-scoped dataset one export job consumes. It is
// read inside a single snapshot so the row dump and the aggregate tables
// agree with each other.
type ReportData struct {
	Rows         []BottleRow
	Regions      []RegionStat
	Vintages     []VintageStat
	PriceBuckets []PriceBucketStat
	Producers    []ProducerStat
}

// TotalValue sums the purchase prices of the row dump.
func (d *ReportData) TotalValue() float64 {
	var total float64
	for _, r := range d.Rows {
		total += r.Price
	}
	return total
}

// AveragePrice returns the mean purchase price, zero for an empty dump.
func (d *ReportData) AveragePrice() float64 {
	if len(d.Rows) == 0 {
		return 0
	}
	return d.TotalValue() / float64(len(d.Rows))
}

// PriceRange returns the minimum and maximum purchase prices, both zero
// for an empty dump.
func (d *ReportData) PriceRange() (min, max float64) {
	if len(d.Rows) == 0 {
		return 0, 0
	}
	min, max = d.Rows[0].Price, d.Rows[0].Price
	for _, r := range d.Rows[1:] {
		if r.Price < min {
			min = r.Price
		}
		if r.Price > max {
			max = r.Price
		}
	}
	return min, max
}

// DistinctProducers counts unique non-empty producer names in the dump.
func (d *ReportData) DistinctProducers() int {
	seen := map[string]struct{}{}
	for _, r := range d.Rows {
		if r.Producer != "" {
			seen[r.Producer] = struct{}{}
		}
	}
	return len(seen)
}

// DistinctRegions counts unique non-empty region names in the dump.
func (d *ReportData) DistinctRegions() int {
	seen := map[string]struct{}{}
	for _, r := range d.Rows {
		if r.Region != "" {
			seen[r.Region] = struct{}{}
		}
	}
	return len(seen)
}
