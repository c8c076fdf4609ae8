// Package store implements the data access gateway for winestore.
//
// The gateway translates domain operations into parameterized MySQL
// queries. Caller-supplied values are always bound as statement
// parameters; query text only ever carries identifiers the caller cannot
// influence.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                       Gateway (facade)                          │
//	├─────────────────────────────────────────────────────────────────┤
//	│  List / Insert / Update / Delete  │  Statistics / ReportSnapshot│
//	│                ▼                  │              ▼              │
//	│      WineBottle, WineLocation     │     aggregate queries       │
//	└─────────────────────────────────────────────────────────────────┘
//
// # Schema
//
//	┌───────────────┬────────────────────────────────────────────────┐
//	│  Table        │  Purpose                                       │
//	├───────────────┼────────────────────────────────────────────────┤
//	│  WineBottle   │  One row per bottle (name, producer, vintage,  │
//	│               │  region, price, purchase date)                 │
//	│  WineLocation │  Zero-or-one shelving row per bottle (shelf,   │
//	│               │  rack, cellar, quantity), FK on BottleID       │
//	└───────────────┴────────────────────────────────────────────────┘
//
// # Connection discipline
//
// The Gateway owns a bounded database/sql pool. Every operation scopes
// its own connection (Gateway.conn → defer Close), so concurrent
// operations never share one; the pool bound replaces the older
// connection-per-call open/close cycle without changing that invariant.
//
// # List Options
//
// List uses the functional options pattern. Each ListOption modifies the
// squirrel query builder, and options combine freely:
//
//	rows, err := gw.List(ctx,
//	    store.WithTerm("chianti"),
//	    store.ByRegion("Tuscany"),
//	    store.ByVintageRange(2015, 2020),
//	    store.WithOrder(store.OrderNewestFirst),
//	)
//
//   - WithTerm(term)           case-insensitive substring over name,
//     producer, and region, OR'd
//   - ByRegion(region)         exact region match
//   - ByVintageRange(min, max) inclusive year range, 0 means open
//   - WithOrder(order)         OrderNewestFirst (ID desc) or
//     OrderVintagePriceDesc (export ordering)
//
// List with no filter options is the full fetch, so an empty search is
// identical to it by construction.
//
// # Write semantics
//
//   - Insert clamps the price to models.PriceCeiling, maps an empty
//     purchase date to NULL, and inserts the location row only when a
//     shelving label is present. Bottle and location go in one
//     transaction.
//   - Update replaces all bottle fields and fully replaces the location
//     row (unconditional delete, conditional re-insert) in one
//     transaction. Unknown identifiers yield NotFoundError.
//   - Delete removes location rows before the bottle row, in one
//     transaction; the FK makes the order mandatory.
//
// # Error kinds
//
// Operations return typed errors from pkg/errors instead of collapsing
// failures into empty results:
//
//	┌──────────────────┬──────────────────────────────────────────────┐
//	│  ConnectionError │  pool could not hand out a connection        │
//	│  QueryError      │  statement or scan failed                    │
//	│  NotFoundError   │  update/delete target does not exist         │
//	└──────────────────┴──────────────────────────────────────────────┘
//
// # Export snapshot
//
// ReportSnapshot reads the row dump and the region/vintage/price-bucket/
// producer aggregate tables inside a single read-only repeatable-read
// transaction, so one export job sees one consistent snapshot.
package store
