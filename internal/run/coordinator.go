// Package run drives a whole batch: enumerate the input directory, push
// every file through the pipeline, then check collected warranties.
package run

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/entity"
	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/ingest"
	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/warranty"
)

// FileProcessor runs the full pipeline for one source file.
type FileProcessor interface {
	ProcessFile(ctx context.Context, src entity.SourceFile) (entity.ReceiptResult, error)
}

// TimeSource supplies the run's idea of "now". Injected so expiry checks
// are reproducible in tests.
type TimeSource interface {
	Now() time.Time
}

type systemTime struct{}

func (systemTime) Now() time.Time { return time.Now() }

// Summary counts what happened during one run. Failures stay counts
// here: the process exit code is the caller's call, not ours.
type Summary struct {
	RunID      string `json:"run_id"`
	Scanned    int    `json:"scanned"`
	Matched    int    `json:"matched"`
	Processed  int    `json:"processed"`
	Failed     int    `json:"failed"`
	Warranties int    `json:"warranties"`
	Alerts     int    `json:"alerts"`
}

// FileOutcome pairs one input file with how its processing ended. Err is
// empty on success.
type FileOutcome struct {
	File   entity.SourceFile    `json:"file"`
	Result entity.ReceiptResult `json:"result"`
	Err    string               `json:"err,omitempty"`
}

type Coordinator struct {
	proc    FileProcessor
	monitor *warranty.Monitor
	logger  *slog.Logger
	clock   TimeSource
	workers int
}

type Option func(*Coordinator)

func WithWorkers(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.workers = n
		}
	}
}

func WithTimeSource(ts TimeSource) Option {
	return func(c *Coordinator) {
		if ts != nil {
			c.clock = ts
		}
	}
}

// NewCoordinator creates a Coordinator. Runs are sequential unless
// WithWorkers raises the pool size.
func NewCoordinator(proc FileProcessor, monitor *warranty.Monitor, logger *slog.Logger, opts ...Option) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Coordinator{
		proc:    proc,
		monitor: monitor,
		logger:  logger,
		clock:   systemTime{},
		workers: 1,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Run processes every receipt in inputDir and returns the summary plus
// per-file outcomes in enumeration order. Per-file failures are isolated:
// they land in their outcome and the run keeps going. The warranty check
// fires exactly once, after every file has finished. A missing input
// directory is an empty run, not an error.
func (c *Coordinator) Run(ctx context.Context, inputDir string) (Summary, []FileOutcome, error) {
	runID := uuid.New().String()
	logger := c.logger.With("run_id", runID)
	summary := Summary{RunID: runID}

	files, stats, err := ingest.ListDir(inputDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("input directory missing, nothing to do", "input", inputDir)
			return summary, nil, nil
		}
		return summary, nil, err
	}
	summary.Scanned = int(stats.Scanned)
	summary.Matched = int(stats.Matched)

	logger.Info("run started",
		"input", inputDir,
		"files", len(files),
		"workers", c.workers)

	// Outcomes are addressed by index so the pool never reorders them.
	outcomes := make([]FileOutcome, len(files))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for idx := range jobs {
				src := files[idx]
				res, err := c.proc.ProcessFile(ctx, src)
				out := FileOutcome{File: src, Result: res}
				if err != nil {
					out.Err = err.Error()
					logger.Error("processing failed",
						"worker_id", workerID,
						"file", src.Name,
						"error", err)
				}
				outcomes[idx] = out
			}
		}(i + 1)
	}

	fed := 0
feed:
	for idx := range files {
		if ctx.Err() != nil {
			break
		}
		select {
		case jobs <- idx:
			fed++
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	// Anything never handed to a worker ended with the context.
	for idx := fed; idx < len(files); idx++ {
		outcomes[idx] = FileOutcome{File: files[idx], Err: ctx.Err().Error()}
	}

	var records []entity.WarrantyRecord
	for _, out := range outcomes {
		if out.Err != "" {
			summary.Failed++
			continue
		}
		summary.Processed++
		if out.Result.WarrantyDate != "" {
			records = append(records, entity.WarrantyRecord{
				Identifier: out.Result.Filename,
				ExpiryDate: out.Result.WarrantyDate,
				Location:   out.Result.OutputLocation,
			})
		}
	}
	summary.Warranties = len(records)

	expiring := c.monitor.AlertExpiring(records, c.clock.Now())
	summary.Alerts = len(expiring)

	logger.Info("run finished",
		"scanned", summary.Scanned,
		"matched", summary.Matched,
		"processed", summary.Processed,
		"failed", summary.Failed,
		"warranties", summary.Warranties,
		"alerts", summary.Alerts)
	return summary, outcomes, nil
}
