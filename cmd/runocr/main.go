// runocr pushes a single receipt file through decode, preprocessing and
// OCR, then prints the recognized text. Debug tool for tuning tesseract
// setups without running a whole batch.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/classify"
	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/common"
	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/fields"
	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/imaging"
	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/ocr"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runocr <receipt-file>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read file", "path", path, "error", err)
		os.Exit(1)
	}

	img, format, err := imaging.Decode(data)
	if err != nil {
		logger.Error("decode failed", "path", path, "error", err)
		os.Exit(1)
	}

	engine := ocr.NewEngine(ocr.Config{
		Tesseract:   cfg.OCR.TesseractPath,
		Language:    cfg.OCR.Language,
		TessdataDir: cfg.OCR.TessdataDir,
		Timeout:     cfg.OCR.Timeout,
	}, nil, logger)

	start := time.Now()
	text, err := engine.Recognize(ctx, imaging.PrepareForOCR(img))
	dur := time.Since(start)

	if err != nil {
		logger.Error("text extraction failed",
			"path", path, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	warrantyDate, _ := fields.ExtractWarrantyDate(text)

	logger.Info("text extraction OK",
		"path", path,
		"format", format,
		"category", classify.Categorize(text),
		"warranty_date", warrantyDate,
		"line_items", len(fields.ExtractLineItems(text)),
		"bytes", len(text),
		"duration_ms", dur.Milliseconds(),
	)

	fmt.Println(text)
}
