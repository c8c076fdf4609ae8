package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	srvErrors "github.com/cellarhub/winestore/pkg/errors"
	"github.com/cellarhub/winestore/pkg/scheduler"
)

type ExportKind string

const (
	ExportExcel          ExportKind = "excel"
	ExportPDFStatistical ExportKind = "pdf_statistical"
	ExportPDFDetailed    ExportKind = "pdf_detailed"
)

type JobState string

const (
	JobPending  JobState = "pending"
	JobRunning  JobState = "running"
	JobFinished JobState = "finished"
	JobError    JobState = "error"
	JobStopped  JobState = "stopped"
)

// ExportJob is the externally visible state of one report generation.
// Finished means the file at Path is fully written and safe to read.
type ExportJob struct {
	ID         string
	Kind       ExportKind
	State      JobState
	Path       string
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Exporter renders one report file. Both renderers satisfy it.
type Exporter interface {
	Export(ctx context.Context, path string) error
}

type jobEntry struct {
	job    ExportJob
	future *scheduler.Future[scheduler.Result[any]]
}

// Export runs report generations on the shared worker pool and tracks
// each one as a cancellable job. The shell polls job state instead of
// blocking on the render.
type Export struct {
	scheduler *scheduler.Scheduler
	exporters map[ExportKind]Exporter
	dir       string
	timeout   time.Duration

	mu   sync.Mutex
	jobs map[string]*jobEntry
}

func NewExportService(s *scheduler.Scheduler, exporters map[ExportKind]Exporter, dir string, timeout time.Duration) *Export {
	return &Export{
		scheduler: s,
		exporters: exporters,
		dir:       dir,
		timeout:   timeout,
		jobs:      make(map[string]*jobEntry),
	}
}

// Start dispatches a new export job and returns it in the pending state.
// The call never blocks on the render itself.
func (e *Export) Start(kind ExportKind) (ExportJob, error) {
	exporter, ok := e.exporters[kind]
	if !ok {
		return ExportJob{}, srvErrors.NewExportError(string(kind), fmt.Errorf("unknown export kind"))
	}

	id := uuid.NewString()
	job := ExportJob{
		ID:        id,
		Kind:      kind,
		State:     JobPending,
		Path:      filepath.Join(e.dir, exportFileName(kind)),
		StartedAt: time.Now(),
	}

	work := func(ctx context.Context) (any, error) {
		e.setState(id, JobRunning, "")
		if err := exporter.Export(ctx, job.Path); err != nil {
			return nil, err
		}
		return job.Path, nil
	}

	// registry insert and future assignment stay under one lock: a Stop
	// racing the dispatch must always find a cancellable future
	e.mu.Lock()
	entry := &jobEntry{job: job}
	e.jobs[id] = entry
	entry.future = e.scheduler.AddWorkWithTimeout(work, e.timeout)
	future := entry.future
	e.mu.Unlock()

	go e.await(id, future)

	return job, nil
}

// await consumes the single result of the job's future and records the
// terminal state. Finished is set only after the renderer returned,
// which in turn happens only after the file hit the disk.
func (e *Export) await(id string, future *scheduler.Future[scheduler.Result[any]]) {
	result := <-future.C()
	if result.Err != nil {
		zap.S().Named("export").Errorw("export job failed", "job", id, "error", result.Err)
		e.setState(id, JobError, result.Err.Error())
		return
	}
	e.setState(id, JobFinished, "")
}

// Get returns a copy of the job's current state.
func (e *Export) Get(id string) (ExportJob, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	entry, ok := e.jobs[id]
	if !ok {
		return ExportJob{}, false
	}
	return entry.job, true
}

// List returns copies of all known jobs in no particular order.
func (e *Export) List() []ExportJob {
	e.mu.Lock()
	defer e.mu.Unlock()
	jobs := make([]ExportJob, 0, len(e.jobs))
	for _, entry := range e.jobs {
		jobs = append(jobs, entry.job)
	}
	return jobs
}

// Stop cancels a pending or running job. A job already in a terminal
// state keeps that state.
func (e *Export) Stop(id string) error {
	e.mu.Lock()
	entry, ok := e.jobs[id]
	e.mu.Unlock()
	if !ok {
		return srvErrors.NewNotFoundError("export job", id)
	}

	if entry.future != nil {
		entry.future.Stop()
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if entry.job.State == JobPending || entry.job.State == JobRunning {
		entry.job.State = JobStopped
		entry.job.FinishedAt = time.Now()
	}
	return nil
}

func (e *Export) setState(id string, state JobState, errMsg string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	entry, ok := e.jobs[id]
	if !ok {
		return
	}
	// a stop that raced the worker wins; a stopped job never transitions
	if entry.job.State == JobStopped {
		return
	}
	entry.job.State = state
	entry.job.Error = errMsg
	if state == JobFinished || state == JobError {
		entry.job.FinishedAt = time.Now()
	}
}

func exportFileName(kind ExportKind) string {
	stamp := time.Now().Format("20060102_150405")
	switch kind {
	case ExportExcel:
		return fmt.Sprintf("wine_report_%s.xlsx", stamp)
	case ExportPDFStatistical:
		return fmt.Sprintf("wine_statistics_%s.pdf", stamp)
	default:
		return fmt.Sprintf("wine_collection_%s.pdf", stamp)
	}
}
