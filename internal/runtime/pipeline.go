// Package runtime provides the pipeline execution engine.
// It orchestrates the single sequential run: load table, derive features,
// write table. There is no scheduling, no concurrency, and no retry; the
// first fault aborts the run and propagates to the caller unmodified.
package runtime

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/giangnmt98/ExtractFeature/internal/config"
	"github.com/giangnmt98/ExtractFeature/internal/errhandling"
	"github.com/giangnmt98/ExtractFeature/internal/feature"
	"github.com/giangnmt98/ExtractFeature/internal/logger"
	"github.com/giangnmt98/ExtractFeature/internal/pathutil"
	"github.com/giangnmt98/ExtractFeature/internal/table"
)

// Execution status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Pipeline stage names used in logs.
const (
	StageLoad   = "load"
	StageDerive = "derive"
	StageWrite  = "write"
)

// ExecutionResult summarizes a pipeline run for display.
type ExecutionResult struct {
	// RunID is the unique identifier of this execution.
	RunID string
	// Status is "success" or "error".
	Status string
	// Rows and Columns describe the final table.
	Rows    int
	Columns int
	// Table is the final augmented table, nil if the run failed before
	// derivation completed.
	Table *table.Table
	// OutputPath is where the table was written.
	OutputPath string
	// Stage durations.
	LoadDuration   time.Duration
	DeriveDuration time.Duration
	WriteDuration  time.Duration
	TotalDuration  time.Duration
}

// Executor runs the extraction pipeline for one configuration.
type Executor struct {
	cfg     *config.Config
	loader  *table.Loader
	deriver *feature.Deriver
	writer  *table.Writer
	log     *slog.Logger
}

// NewExecutor creates an executor for the given configuration.
// The logger is the run's logging sink; components receive it scoped with
// their component name.
func NewExecutor(cfg *config.Config, log *slog.Logger) *Executor {
	return &Executor{
		cfg:     cfg,
		loader:  table.NewLoader(logger.WithComponent(log, "loader")),
		deriver: feature.NewDeriver(logger.WithComponent(log, "feature")),
		writer:  table.NewWriter(logger.WithComponent(log, "writer")),
		log:     log,
	}
}

// Execute runs Load → Derive → Write once. The returned ExecutionResult is
// non-nil even on failure so callers can report the run ID and status; the
// error is the component fault, unmodified.
func (e *Executor) Execute() (*ExecutionResult, error) {
	runID := uuid.NewString()
	log := logger.WithRun(e.log, runID)

	result := &ExecutionResult{
		RunID:      runID,
		Status:     StatusError,
		OutputPath: e.cfg.OutputDataPath,
	}

	log.Info("execution started",
		slog.String("input_path", e.cfg.InputDataPath),
		slog.String("output_path", e.cfg.OutputDataPath),
	)
	startTime := time.Now()

	if err := pathutil.ValidateFilePath(e.cfg.InputDataPath); err != nil {
		return result, errhandling.NewFileAccessError(e.cfg.InputDataPath, err)
	}
	if err := pathutil.ValidateFilePath(e.cfg.OutputDataPath); err != nil {
		return result, errhandling.NewFileAccessError(e.cfg.OutputDataPath, err)
	}

	tbl, err := e.runLoad(log, result)
	if err != nil {
		return result, err
	}

	if err := e.runDerive(log, result, tbl); err != nil {
		return result, err
	}

	if err := e.runWrite(log, result, tbl); err != nil {
		return result, err
	}

	result.Status = StatusSuccess
	result.Table = tbl
	result.Rows = tbl.NumRows()
	result.Columns = tbl.NumColumns()
	result.TotalDuration = time.Since(startTime)

	log.Info("execution completed",
		slog.String("status", result.Status),
		slog.Int("rows", result.Rows),
		slog.Int("columns", result.Columns),
		slog.Duration("duration", result.TotalDuration),
	)
	return result, nil
}

func (e *Executor) runLoad(log *slog.Logger, result *ExecutionResult) (*table.Table, error) {
	log.Info("stage started", slog.String("stage", StageLoad))
	start := time.Now()

	tbl, err := e.loader.Load(e.cfg.InputDataPath, e.cfg.Fields)
	result.LoadDuration = time.Since(start)

	if err != nil {
		log.Error("stage failed",
			slog.String("stage", StageLoad),
			slog.Duration("duration", result.LoadDuration),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	log.Info("stage completed",
		slog.String("stage", StageLoad),
		slog.Int("record_count", tbl.NumRows()),
		slog.Duration("duration", result.LoadDuration),
	)
	return tbl, nil
}

func (e *Executor) runDerive(log *slog.Logger, result *ExecutionResult, tbl *table.Table) error {
	log.Info("stage started", slog.String("stage", StageDerive))
	start := time.Now()

	_, err := e.deriver.Derive(tbl, e.cfg.Features)
	result.DeriveDuration = time.Since(start)

	if err != nil {
		log.Error("stage failed",
			slog.String("stage", StageDerive),
			slog.Duration("duration", result.DeriveDuration),
			slog.String("error", err.Error()),
		)
		return err
	}

	log.Info("stage completed",
		slog.String("stage", StageDerive),
		slog.Int("column_count", tbl.NumColumns()),
		slog.Duration("duration", result.DeriveDuration),
	)
	return nil
}

func (e *Executor) runWrite(log *slog.Logger, result *ExecutionResult, tbl *table.Table) error {
	log.Info("stage started", slog.String("stage", StageWrite))
	start := time.Now()

	err := e.writer.Write(tbl, e.cfg.OutputDataPath)
	result.WriteDuration = time.Since(start)

	if err != nil {
		log.Error("stage failed",
			slog.String("stage", StageWrite),
			slog.Duration("duration", result.WriteDuration),
			slog.String("error", err.Error()),
		)
		return err
	}

	log.Info("stage completed",
		slog.String("stage", StageWrite),
		slog.Duration("duration", result.WriteDuration),
	)
	return nil
}
