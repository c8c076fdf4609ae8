package store

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/cellarhub/winestore/internal/models"
	srvErrors "github.com/cellarhub/winestore/pkg/errors"
)

// Statistics returns the dashboard aggregate snapshot: totals, per-region
// counts (empty regions excluded), per-vintage counts ascending, and the
// two chart projections derived from them.
func (g *Gateway) Statistics(ctx context.Context) (*models.Statistics, error) {
	conn, err := g.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	stats := models.EmptyStatistics()

	if err := conn.QueryRowContext(ctx, queryCountBottles).Scan(&stats.TotalBottles); err != nil {
		return nil, srvErrors.NewQueryError("count bottles", err)
	}
	stats.InStorage = stats.TotalBottles

	var totalValue sql.NullFloat64
	if err := conn.QueryRowContext(ctx, querySumValue).Scan(&totalValue); err != nil {
		return nil, srvErrors.NewQueryError("sum value", err)
	}
	stats.TotalValue = totalValue.Float64

	rows, err := conn.QueryContext(ctx, queryRegionCounts)
	if err != nil {
		return nil, srvErrors.NewQueryError("region counts", err)
	}
	defer rows.Close()
	for rows.Next() {
		var region string
		var count int
		if err := rows.Scan(&region, &count); err != nil {
			return nil, srvErrors.NewQueryError("scan region count", err)
		}
		stats.Regions[region] = count
		stats.PieSeries.Labels = append(stats.PieSeries.Labels, region)
		stats.PieSeries.Values = append(stats.PieSeries.Values, float64(count))
	}
	if err := rows.Err(); err != nil {
		return nil, srvErrors.NewQueryError("region counts", err)
	}

	vintageRows, err := conn.QueryContext(ctx, queryVintageCounts)
	if err != nil {
		return nil, srvErrors.NewQueryError("vintage counts", err)
	}
	defer vintageRows.Close()
	for vintageRows.Next() {
		var vc models.VintageCount
		if err := vintageRows.Scan(&vc.Vintage, &vc.Count); err != nil {
			return nil, srvErrors.NewQueryError("scan vintage count", err)
		}
		stats.Vintages = append(stats.Vintages, vc)
		stats.LineSeries.Labels = append(stats.LineSeries.Labels, strconv.Itoa(vc.Vintage))
		stats.LineSeries.Values = append(stats.LineSeries.Values, float64(vc.Count))
	}
	if err := vintageRows.Err(); err != nil {
		return nil, srvErrors.NewQueryError("vintage counts", err)
	}

	return stats, nil
}

// ReportSnapshot reads the row dump and all four aggregate tables inside
// one read-only repeatable-read transaction, so an export job observes a
// single consistent snapshot even while writes land.
func (g *Gateway) ReportSnapshot(ctx context.Context, order Order) (*models.ReportData, error) {
	conn, err := g.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
	if err != nil {
		return nil, srvErrors.NewQueryError("begin snapshot", err)
	}
	defer tx.Rollback() //nolint:errcheck

	data := &models.ReportData{}

	data.Rows, err = listRows(ctx, tx, WithOrder(order))
	if err != nil {
		return nil, err
	}

	if data.Regions, err = regionStats(ctx, tx); err != nil {
		return nil, err
	}
	if data.Vintages, err = vintageStats(ctx, tx); err != nil {
		return nil, err
	}
	if data.PriceBuckets, err = priceBucketStats(ctx, tx); err != nil {
		return nil, err
	}
	if data.Producers, err = producerStats(ctx, tx); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, srvErrors.NewQueryError("commit snapshot", err)
	}
	return data, nil
}

func regionStats(ctx context.Context, q querier) ([]models.RegionStat, error) {
	rows, err := q.QueryContext(ctx, queryRegionStats)
	if err != nil {
		return nil, srvErrors.NewQueryError("region stats", err)
	}
	defer rows.Close()

	stats := []models.RegionStat{}
	for rows.Next() {
		var s models.RegionStat
		var avg, total sql.NullFloat64
		if err := rows.Scan(&s.Region, &s.Count, &avg, &total); err != nil {
			return nil, srvErrors.NewQueryError("scan region stat", err)
		}
		s.AvgPrice = avg.Float64
		s.TotalValue = total.Float64
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func vintageStats(ctx context.Context, q querier) ([]models.VintageStat, error) {
	rows, err := q.QueryContext(ctx, queryVintageStats)
	if err != nil {
		return nil, srvErrors.NewQueryError("vintage stats", err)
	}
	defer rows.Close()

	stats := []models.VintageStat{}
	for rows.Next() {
		var s models.VintageStat
		var avg sql.NullFloat64
		if err := rows.Scan(&s.Vintage, &s.Count, &avg); err != nil {
			return nil, srvErrors.NewQueryError("scan vintage stat", err)
		}
		s.AvgPrice = avg.Float64
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func priceBucketStats(ctx context.Context, q querier) ([]models.PriceBucketStat, error) {
	rows, err := q.QueryContext(ctx, queryPriceBuckets)
	if err != nil {
		return nil, srvErrors.NewQueryError("price buckets", err)
	}
	defer rows.Close()

	stats := []models.PriceBucketStat{}
	for rows.Next() {
		var s models.PriceBucketStat
		var total sql.NullFloat64
		if err := rows.Scan(&s.Bucket, &s.Count, &total); err != nil {
			return nil, srvErrors.NewQueryError("scan price bucket", err)
		}
		s.TotalValue = total.Float64
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func producerStats(ctx context.Context, q querier) ([]models.ProducerStat, error) {
	rows, err := q.QueryContext(ctx, queryProducerStats)
	if err != nil {
		return nil, srvErrors.NewQueryError("producer stats", err)
	}
	defer rows.Close()

	stats := []models.ProducerStat{}
	for rows.Next() {
		var s models.ProducerStat
		var avg, total sql.NullFloat64
		if err := rows.Scan(&s.Producer, &s.Count, &avg, &total); err != nil {
			return nil, srvErrors.NewQueryError("scan producer stat", err)
		}
		s.AvgPrice = avg.Float64
		s.TotalValue = total.Float64
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
