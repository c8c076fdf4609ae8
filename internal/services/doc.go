// Package services implements the business logic layer of the wine
// collection manager.
//
// Services act as intermediaries between the HTTP handlers and the data
// gateway. Each service encapsulates one area of domain logic and
// manages its own state where applicable.
//
// # Service Dependency Graph
//
//	Handlers (HTTP endpoints)
//	    │
//	    ▼
//	Services Layer
//	    ├── BottleService ─────► Gateway
//	    ├── StatisticsService ─► Gateway
//	    └── Export ────────────► Scheduler, Renderers ──► Gateway
//
// # BottleService
//
// BottleService translates the shell's list parameters into gateway
// list options and forwards writes. It is stateless.
//
// Usage:
//
//	bottles := services.NewBottleService(gateway)
//	rows, err := bottles.List(ctx, services.BottleListParams{
//	    Term:  "chianti",
//	    Order: store.OrderNewestFirst,
//	})
//	id, err := bottles.Insert(ctx, fields)
//
// # StatisticsService
//
// StatisticsService produces the dashboard aggregates. The dashboard is
// the shell's landing view and must always render, so a failing store
// degrades to the empty statistics shape; the error is logged, never
// propagated.
//
// # Export
//
// Export runs report generations as asynchronous jobs on the shared
// worker pool. Each job gets a unique id and moves through:
//
//	┌─────────┐    ┌─────────┐    ┌──────────┐
//	│ Pending │───►│ Running │───►│ Finished │
//	└─────────┘    └─────────┘    └──────────┘
//	     │              │
//	     │   (cancel)   │   (failure, timeout)
//	     ▼              ▼
//	┌─────────┐    ┌──────────┐
//	│ Stopped │    │  Error   │
//	└─────────┘    └──────────┘
//
// Key behaviors:
//   - Start never blocks on the render; the job is dispatched and
//     returned in the pending state.
//   - Finished is recorded only after the renderer wrote the file, so a
//     finished job always points at a complete file.
//   - Stop cancels the job's context; a stopped job never transitions
//     again, even if the worker raced it to completion.
//   - Each job carries a deadline; an overrunning render resolves to
//     the error state with context.DeadlineExceeded.
//
// Usage:
//
//	export := services.NewExportService(sched, exporters, dir, 2*time.Minute)
//	job, err := export.Start(services.ExportExcel)
//	job, ok := export.Get(job.ID)
//	err = export.Stop(job.ID)
//
// # Thread Safety
//
// Export protects its job registry with a sync.Mutex; state transitions
// happen under the lock. BottleService and StatisticsService are
// stateless and thread-safe through the gateway.
package services
