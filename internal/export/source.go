package export

import (
	"context"

	"github.com/cellarhub/winestore/internal/models"
	"github.com/cellarhub/winestore/internal/store"
)

// DataSource is the single data feed of both renderers. The gateway
// satisfies it; tests feed fixed datasets.
type DataSource interface {
	ReportSnapshot(ctx context.Context, order store.Order) (*models.ReportData, error)
}
