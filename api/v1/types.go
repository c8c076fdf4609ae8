package v1

// Bottle is the API shape of one inventory row, location and
// display-only fields included.
type Bottle struct {
	Id           int64   `json:"id"`
	Name         string  `json:"name"`
	Producer     string  `json:"producer"`
	Vintage      int     `json:"vintage_year,omitempty"`
	Region       string  `json:"region"`
	Price        float64 `json:"price"`
	PurchaseDate string  `json:"purchase_date,omitempty"`
	Shelf        string  `json:"shelf,omitempty"`
	Rack         string  `json:"rack,omitempty"`
	Cellar       string  `json:"cellar,omitempty"`
	Status       string  `json:"status"`
	SerialNumber string  `json:"serial_number"`
	VolumeMl     int     `json:"volume_ml"`
}

type BottleListResponse struct {
	Total   int      `json:"total"`
	Bottles []Bottle `json:"bottles"`
}

type CreatedResponse struct {
	Id int64 `json:"id"`
}

type ChartSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type VintageCount struct {
	Vintage int `json:"vintage_year"`
	Count   int `json:"count"`
}

type StatisticsResponse struct {
	TotalBottles int            `json:"total_bottles"`
	InStorage    int            `json:"in_storage"`
	Consumed     int            `json:"consumed"`
	TotalValue   float64        `json:"total_value"`
	Regions      map[string]int `json:"regions"`
	Vintages     []VintageCount `json:"vintages"`
	LineSeries   ChartSeries    `json:"line_series"`
	PieSeries    ChartSeries    `json:"pie_series"`
}

type ExportRequest struct {
	Kind string `json:"kind" binding:"required"`
}

type ExportJob struct {
	Id         string  `json:"id"`
	Kind       string  `json:"kind"`
	State      string  `json:"state"`
	Path       string  `json:"path,omitempty"`
	Error      *string `json:"error,omitempty"`
	StartedAt  string  `json:"started_at"`
	FinishedAt string  `json:"finished_at,omitempty"`
}

type ExportJobListResponse struct {
	Jobs []ExportJob `json:"jobs"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
