// Package export renders the collection into shareable report files.
//
// Two renderers exist, both reading through the same DataSource
// boundary so tests can feed fixed datasets:
//
//	┌───────────────┬───────────────────────────────────────────────────┐
//	│ Renderer      │ Output                                            │
//	├───────────────┼───────────────────────────────────────────────────┤
//	│ ExcelExporter │ Three-sheet workbook: "Data" (full row dump with  │
//	│               │ autofilter and frozen header), "Analytics"        │
//	│               │ (aggregate tables, indicators, conclusions and    │
//	│               │ two charts), "Visualization" (key metrics plus a  │
//	│               │ line chart of average price by vintage).          │
//	│ PDFExporter   │ Paginated A4 document in one of two variants:     │
//	│               │ "statistical" (four aggregate sections) or        │
//	│               │ "detailed" (bordered full listing with summary).  │
//	└───────────────┴───────────────────────────────────────────────────┘
//
// # Snapshot discipline
//
// Each Export call pulls exactly one ReportSnapshot, so the row dump
// and the aggregate tables of a single file always describe the same
// state. The Excel workbook orders rows by vintage then price
// descending; the PDF listing orders newest-first.
//
// # Chart ranges
//
// Table positions in the workbook are captured while the rows are
// written and the chart category/value ranges are computed from those
// captured bounds. Charts are skipped entirely when their table is
// empty.
//
// # Empty collections
//
// An empty snapshot still produces a valid file. Sheets carry a
// "No data available" cell in place of tables and charts; the PDF
// renders the title page followed by a single notice page.
//
// # Text safety
//
// The core PDF fonts lack most currency glyphs, so rendered text
// passes through a replacer that rewrites them to ISO-style codes
// (RUB, EUR, GBP, JPY). Long names are shortened with a "..." marker
// before they enter fixed-width table cells.
package export
