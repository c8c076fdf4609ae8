package v1

import (
	"time"

	"github.com/cellarhub/winestore/internal/models"
	"github.com/cellarhub/winestore/internal/services"
)

// displayDate is the date format the shell renders.
const displayDate = "02.01.2006"

// NewBottleFromModel converts a joined store row to an API Bottle.
func NewBottleFromModel(row models.BottleRow) Bottle {
	b := Bottle{
		Id:           row.ID,
		Name:         row.Name,
		Producer:     row.Producer,
		Vintage:      row.Vintage,
		Region:       row.Region,
		Price:        row.Price,
		Shelf:        row.Shelf,
		Rack:         row.Rack,
		Cellar:       row.Cellar,
		Status:       row.Status,
		SerialNumber: row.SerialNumber,
		VolumeMl:     row.VolumeML,
	}
	if row.PurchaseDate != nil {
		b.PurchaseDate = row.PurchaseDate.Format(displayDate)
	}
	return b
}

// NewStatisticsResponse converts the dashboard aggregates to the API shape.
func NewStatisticsResponse(stats *models.Statistics) StatisticsResponse {
	resp := StatisticsResponse{
		TotalBottles: stats.TotalBottles,
		InStorage:    stats.InStorage,
		Consumed:     stats.Consumed,
		TotalValue:   stats.TotalValue,
		Regions:      stats.Regions,
		Vintages:     make([]VintageCount, 0, len(stats.Vintages)),
		LineSeries:   ChartSeries(stats.LineSeries),
		PieSeries:    ChartSeries(stats.PieSeries),
	}
	for _, vc := range stats.Vintages {
		resp.Vintages = append(resp.Vintages, VintageCount{Vintage: vc.Vintage, Count: vc.Count})
	}
	return resp
}

// NewExportJob converts a service job to the API shape.
func NewExportJob(job services.ExportJob) ExportJob {
	j := ExportJob{
		Id:        job.ID,
		Kind:      string(job.Kind),
		State:     string(job.State),
		StartedAt: job.StartedAt.Format(time.RFC3339),
	}
	if job.State == services.JobFinished {
		j.Path = job.Path
	}
	if job.Error != "" {
		e := job.Error
		j.Error = &e
	}
	if !job.FinishedAt.IsZero() {
		j.FinishedAt = job.FinishedAt.Format(time.RFC3339)
	}
	return j
}

// ParseExportKind maps the API kind string to the service kind.
func ParseExportKind(kind string) (services.ExportKind, bool) {
	switch kind {
	case string(services.ExportExcel):
		return services.ExportExcel, true
	case string(services.ExportPDFStatistical):
		return services.ExportPDFStatistical, true
	case string(services.ExportPDFDetailed):
		return services.ExportPDFDetailed, true
	}
	return "", false
}
