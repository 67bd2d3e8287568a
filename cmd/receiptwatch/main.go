// receiptwatch runs the receipt pipeline as a daemon: it watches the
// input directory and processes receipt files as they arrive. Warranty
// alerts fire per file instead of per batch, since a watch never ends.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/aiseeds25/Smartreceiptscannercategorizer/constants"
	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/artifact"
	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/common"
	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/entity"
	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/ingest"
	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/ocr"
	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/pipeline"
	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/warranty"
)

func main() {
	fs := ff.NewFlagSet("receiptwatch")
	var (
		input  = fs.StringLong("input", "incoming_receipts", "directory to watch for receipt files")
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := ocr.NewEngine(ocr.Config{
		Tesseract:   cfg.OCR.TesseractPath,
		Language:    cfg.OCR.Language,
		TessdataDir: cfg.OCR.TessdataDir,
		Timeout:     cfg.OCR.Timeout,
	}, nil, logger)
	store := artifact.NewFSStore(*output, logger)
	processor := pipeline.NewProcessor(engine, store, logger)
	monitor := warranty.NewMonitor(cfg.Warranty.ThresholdDays, logger)

	// Debounce gives writers a moment to finish materializing a file
	// before we read it; a file caught mid-write just fails that one
	// event and is logged like any other per-file failure.
	events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Root:        *input,
		Debounce:    cfg.Watch.Debounce,
		InitialScan: true,
	}, logger)
	if err != nil {
		logger.Error("failed to start watcher", "input", *input, "error", err)
		os.Exit(1)
	}

	// Watcher errors are already logged at the source; the channel just
	// has to be drained.
	go func() {
		for range errs {
		}
	}()

	logger.Info("watching for receipts", "input", *input, "output", *output)

	processed, failed := 0, 0
	for path := range events {
		src := entity.SourceFile{
			Path: path,
			Name: filepath.Base(path),
			Ext:  constants.NormalizeExt(filepath.Ext(path)),
		}

		res, err := processor.ProcessFile(ctx, src)
		if err != nil {
			failed++
			logger.Error("processing failed", "file", src.Name, "error", err)
			continue
		}
		processed++

		if res.WarrantyDate != "" {
			monitor.AlertExpiring([]entity.WarrantyRecord{{
				Identifier: res.Filename,
				ExpiryDate: res.WarrantyDate,
				Location:   res.OutputLocation,
			}}, time.Now())
		}
	}

	logger.Info("watcher stopped", "processed", processed, "failed", failed)
	fmt.Println("stopped.")
}

func parseLogLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
