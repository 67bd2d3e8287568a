package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/artifact"
	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/common"
	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/export"
	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/ocr"
	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/pipeline"
	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/run"
	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/warranty"
)

func main() {
	fs := ff.NewFlagSet("receipt-scan")
	var (
		input  = fs.StringLong("input", "incoming_receipts", "directory of receipt files to process")
		output = fs.StringLong("output", "out/txt", "root directory for category-partitioned artifacts")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("RECEIPTS"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		if errors.Is(err, ff.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Logging.Level),
	}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	engine := ocr.NewEngine(ocr.Config{
		Tesseract:   cfg.OCR.TesseractPath,
		Language:    cfg.OCR.Language,
		TessdataDir: cfg.OCR.TessdataDir,
		Timeout:     cfg.OCR.Timeout,
	}, nil, logger)
	store := artifact.NewFSStore(*output, logger)
	processor := pipeline.NewProcessor(engine, store, logger)
	monitor := warranty.NewMonitor(cfg.Warranty.ThresholdDays, logger)
	coordinator := run.NewCoordinator(processor, monitor, logger,
		run.WithWorkers(cfg.Run.Workers))

	summary, outcomes, err := coordinator.Run(context.Background(), *input)
	if err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}

	if cfg.Export.Path != "" {
		exportService := export.NewService(logger)
		if err := exportService.WriteRunReport(cfg.Export.Path, outcomes); err != nil {
			logger.Error("failed to write run report", "error", err)
		}
	}

	// Per-receipt failures are visible in the summary, not the exit code.
	fmt.Printf("Run %s complete!\n", summary.RunID)
	fmt.Printf("- Files matched: %d/%d\n", summary.Matched, summary.Scanned)
	fmt.Printf("- Processed: %d\n", summary.Processed)
	fmt.Printf("- Failures: %d\n", summary.Failed)
	fmt.Printf("- Warranties found: %d (%d expiring soon)\n", summary.Warranties, summary.Alerts)
	fmt.Printf("- Output: %s\n", *output)
}

func parseLogLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
