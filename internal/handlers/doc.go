// Package handlers implements the HTTP API layer of the wine collection
// manager.
//
// Handlers delegate business logic to the services layer and focus on
// request validation, response formatting, and HTTP semantics.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                     HTTP Request (Gin)                          │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Handler (this package)                     │
//	│  - Request validation                                           │
//	│  - Parameter parsing                                            │
//	│  - Error mapping to HTTP status codes                           │
//	│  - Model-to-API conversion                                      │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Services Layer                             │
//	│  Bottles │ Statistics │ Export                                  │
//	└─────────────────────────────────────────────────────────────────┘
//
// # API Endpoints
//
// Bottle Endpoints (bottles.go):
//
//	┌────────┬───────────────┬────────────────────────────────────────┐
//	│ Method │ Endpoint      │ Description                            │
//	├────────┼───────────────┼────────────────────────────────────────┤
//	│ GET    │ /bottles      │ List bottles with optional filtering   │
//	│ POST   │ /bottles      │ Add a bottle (location optional)       │
//	│ PUT    │ /bottles/{id} │ Replace a bottle and its location      │
//	│ DELETE │ /bottles/{id} │ Remove a bottle and its location       │
//	└────────┴───────────────┴────────────────────────────────────────┘
//
// Statistics Endpoint (statistics.go):
//
//	┌────────┬─────────────┬──────────────────────────────────────────┐
//	│ Method │ Endpoint    │ Description                              │
//	├────────┼─────────────┼──────────────────────────────────────────┤
//	│ GET    │ /statistics │ Dashboard aggregates and chart series    │
//	└────────┴─────────────┴──────────────────────────────────────────┘
//
// Export Endpoints (exports.go):
//
//	┌────────┬───────────────┬────────────────────────────────────────┐
//	│ Method │ Endpoint      │ Description                            │
//	├────────┼───────────────┼────────────────────────────────────────┤
//	│ POST   │ /exports      │ Dispatch a report generation job       │
//	│ GET    │ /exports      │ List all export jobs                   │
//	│ GET    │ /exports/{id} │ Poll one job's state                   │
//	│ DELETE │ /exports/{id} │ Cancel a pending or running job        │
//	└────────┴───────────────┴────────────────────────────────────────┘
//
// # Bottle Listing
//
// GET /bottles accepts query parameters:
//
//	┌───────────┬────────┬────────────────────────────────────────────┐
//	│ Parameter │ Type   │ Description                                │
//	├───────────┼────────┼────────────────────────────────────────────┤
//	│ term      │ string │ Substring match on name, producer, region  │
//	│ region    │ string │ Exact region match                         │
//	│ min_year  │ int    │ Lowest vintage year, inclusive             │
//	│ max_year  │ int    │ Highest vintage year, inclusive            │
//	│ order     │ string │ "newest" (default) or "vintage_price"      │
//	└───────────┴────────┴────────────────────────────────────────────┘
//
// An empty term lists the whole collection; rows come back newest
// first.
//
// # Export Jobs
//
// POST /exports takes {"kind": "excel" | "pdf_statistical" |
// "pdf_detailed"} and answers 202 Accepted with the pending job. The
// shell polls GET /exports/{id} until the state turns finished or
// error; the file path appears on the job only once it is finished.
//
// # Error Handling
//
// Handlers use a consistent error response format:
//
//	{ "error": "error message" }
//
// HTTP Status Code Mapping:
//
//	┌─────────────────────────────┬────────┬──────────────────────────┐
//	│ Error Type                  │ Status │ When                     │
//	├─────────────────────────────┼────────┼──────────────────────────┤
//	│ Validation error            │ 400    │ Invalid request params   │
//	│ NotFoundError               │ 404    │ Resource doesn't exist   │
//	│ Internal error              │ 500    │ Unexpected service error │
//	│ ConnectionError             │ 503    │ Store unreachable        │
//	└─────────────────────────────┴────────┴──────────────────────────┘
//
// GET /statistics is the exception: it always answers 200, degrading to
// the empty aggregate shape when the store is unreachable.
//
// # Model Conversion
//
// Handlers convert between internal models and API types using the
// extension functions in api/v1/extension.go:
//
//   - v1.NewBottleFromModel(models.BottleRow) → v1.Bottle
//   - v1.NewStatisticsResponse(*models.Statistics) → v1.StatisticsResponse
//   - v1.NewExportJob(services.ExportJob) → v1.ExportJob
package handlers
