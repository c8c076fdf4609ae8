package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/cellarhub/winestore/internal/models"
	srvErrors "github.com/cellarhub/winestore/pkg/errors"
)

// Order selects the row ordering of a fetch. Callers spell it out; the
// gateway never guesses per call site.
type Order int

const (
	// OrderNewestFirst sorts by identifier descending, the table-view
	// ordering.
	OrderNewestFirst Order = iota
	// OrderVintagePriceDesc sorts by vintage then price descending, the
	// spreadsheet-export ordering.
	OrderVintagePriceDesc
)

type ListOption func(sq.SelectBuilder) sq.SelectBuilder

// WithTerm matches term as a case-insensitive substring of name,
// producer, or region. An empty term leaves the query unchanged.
func WithTerm(term string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if term == "" {
			return b
		}
		pattern := "%" + strings.ToLower(term) + "%"
		return b.Where(sq.Or{
			sq.Like{"LOWER(wb.WineName)": pattern},
			sq.Like{"LOWER(wb.Producer)": pattern},
			sq.Like{"LOWER(wb.Region)": pattern},
		})
	}
}

// ByRegion narrows to an exact region match.
func ByRegion(region string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if region == "" {
			return b
		}
		return b.Where(sq.Eq{"wb.Region": region})
	}
}

// ByVintageRange narrows to an inclusive vintage-year range. A zero
// bound is open.
func ByVintageRange(min, max int) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if min > 0 {
			b = b.Where(sq.GtOrEq{"wb.Vintage": min})
		}
		if max > 0 {
			b = b.Where(sq.LtOrEq{"wb.Vintage": max})
		}
		return b
	}
}

func WithOrder(o Order) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		switch o {
		case OrderVintagePriceDesc:
			return b.OrderBy("wb.Vintage DESC", "wb.PurchasePrice DESC")
		default:
			return b.OrderBy("wb.BottleID DESC")
		}
	}
}

func listBuilder(opts ...ListOption) sq.SelectBuilder {
	builder := sq.Select(
		"wb.BottleID",
		"wb.WineName",
		"wb.Producer",
		"wb.Vintage",
		"wb.Region",
		"wb.PurchasePrice",
		"wb.PurchaseDate",
		"wl.Shelf",
		"wl.Rack",
		"wl.Cellar",
	).From("WineBottle wb").
		LeftJoin("WineLocation wl ON wb.BottleID = wl.BottleID")

	for _, opt := range opts {
		builder = opt(builder)
	}
	return builder
}

// List returns joined bottle+location rows. With no options it is the
// full fetch; search criteria and ordering come in as options.
func (g *Gateway) List(ctx context.Context, opts ...ListOption) ([]models.BottleRow, error) {
	conn, err := g.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return listRows(ctx, conn, opts...)
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func listRows(ctx context.Context, q querier, opts ...ListOption) ([]models.BottleRow, error) {
	query, args, err := listBuilder(opts...).ToSql()
	if err != nil {
		return nil, srvErrors.NewQueryError("list bottles", err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, srvErrors.NewQueryError("list bottles", err)
	}
	defer rows.Close()

	result := []models.BottleRow{}
	for rows.Next() {
		row, err := scanBottleRow(rows)
		if err != nil {
			return nil, srvErrors.NewQueryError("scan bottle row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, srvErrors.NewQueryError("list bottles", err)
	}
	return result, nil
}

func scanBottleRow(rows *sql.Rows) (models.BottleRow, error) {
	var (
		id                  int64
		name, producer      sql.NullString
		vintage             sql.NullInt64
		region              sql.NullString
		price               sql.NullFloat64
		purchaseDate        sql.NullTime
		shelf, rack, cellar sql.NullString
	)
	err := rows.Scan(&id, &name, &producer, &vintage, &region, &price,
		&purchaseDate, &shelf, &rack, &cellar)
	if err != nil {
		return models.BottleRow{}, err
	}

	row := models.BottleRow{
		Bottle: models.Bottle{
			ID:       id,
			Name:     name.String,
			Producer: producer.String,
			Vintage:  int(vintage.Int64),
			Region:   region.String,
			Price:    price.Float64,
		},
		Shelf:        shelf.String,
		Rack:         rack.String,
		Cellar:       cellar.String,
		Status:       models.StatusInStorage,
		SerialNumber: strconv.FormatInt(id, 10),
		VolumeML:     models.BottleVolumeML,
	}
	if purchaseDate.Valid {
		d := purchaseDate.Time
		row.PurchaseDate = &d
	}
	return row, nil
}

// Insert stores a new bottle and, when any shelving label is set, its
// location, in one transaction. The store-assigned identifier is
// returned.
func (g *Gateway) Insert(ctx context.Context, fields models.BottleFields) (int64, error) {
	args, err := bottleArgs(fields)
	if err != nil {
		return 0, err
	}

	conn, err := g.conn(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, srvErrors.NewQueryError("begin insert", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	res, err := tx.ExecContext(ctx, queryInsertBottle, args...)
	if err != nil {
		return 0, srvErrors.NewQueryError("insert bottle", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, srvErrors.NewQueryError("insert bottle", err)
	}

	if fields.HasLocation() {
		_, err = tx.ExecContext(ctx, queryInsertLocation,
			fields.Shelf, fields.Rack, fields.Cellar, id)
		if err != nil {
			return 0, srvErrors.NewQueryError("insert location", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, srvErrors.NewQueryError("commit insert", err)
	}
	return id, nil
}

// Update replaces every mutable bottle field and fully replaces the
// location row: the prior row is deleted unconditionally and re-inserted
// only when a shelving label is present. Location updates never merge.
func (g *Gateway) Update(ctx context.Context, id int64, fields models.BottleFields) error {
	args, err := bottleArgs(fields)
	if err != nil {
		return err
	}

	conn, err := g.conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return srvErrors.NewQueryError("begin update", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var one int
	err = tx.QueryRowContext(ctx, queryBottleExists, id).Scan(&one)
	if err == sql.ErrNoRows {
		return srvErrors.NewNotFoundError("bottle", id)
	}
	if err != nil {
		return srvErrors.NewQueryError("check bottle", err)
	}

	if _, err := tx.ExecContext(ctx, queryUpdateBottle, append(args, id)...); err != nil {
		return srvErrors.NewQueryError("update bottle", err)
	}

	if _, err := tx.ExecContext(ctx, queryDeleteLocation, id); err != nil {
		return srvErrors.NewQueryError("delete location", err)
	}
	if fields.HasLocation() {
		_, err = tx.ExecContext(ctx, queryInsertLocation,
			fields.Shelf, fields.Rack, fields.Cellar, id)
		if err != nil {
			return srvErrors.NewQueryError("insert location", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return srvErrors.NewQueryError("commit update", err)
	}
	return nil
}

// Delete removes the location rows first and the bottle second, in one
// transaction; the foreign key makes the order load-bearing. Deleting an
// unknown identifier returns NotFoundError, not a silent no-op.
func (g *Gateway) Delete(ctx context.Context, id int64) error {
	conn, err := g.conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return srvErrors.NewQueryError("begin delete", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, queryDeleteLocation, id); err != nil {
		return srvErrors.NewQueryError("delete location", err)
	}

	res, err := tx.ExecContext(ctx, queryDeleteBottle, id)
	if err != nil {
		return srvErrors.NewQueryError("delete bottle", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return srvErrors.NewQueryError("delete bottle", err)
	}
	if affected == 0 {
		return srvErrors.NewNotFoundError("bottle", id)
	}

	if err := tx.Commit(); err != nil {
		return srvErrors.NewQueryError("commit delete", err)
	}
	return nil
}

// bottleArgs prepares the shared insert/update argument list, applying
// the price ceiling and the empty-date-means-NULL rule.
func bottleArgs(fields models.BottleFields) ([]any, error) {
	var vintage any
	if fields.Vintage != 0 {
		vintage = fields.Vintage
	}

	var purchaseDate any
	if fields.PurchaseDate != "" {
		d, err := time.Parse("2006-01-02", fields.PurchaseDate)
		if err != nil {
			return nil, fmt.Errorf("invalid purchase date %q: %w", fields.PurchaseDate, err)
		}
		purchaseDate = d
	}

	return []any{
		fields.Name,
		fields.Producer,
		vintage,
		fields.Region,
		fields.ClampedPrice(),
		purchaseDate,
	}, nil
}
