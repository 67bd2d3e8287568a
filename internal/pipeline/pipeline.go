// Package pipeline chains decode, preprocessing, OCR, classification,
// field extraction, and artifact output for a single receipt file.
package pipeline

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/classify"
	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/entity"
	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/fields"
	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/imaging"
)

// Recognizer turns a preprocessed image into normalized text.
type Recognizer interface {
	Recognize(ctx context.Context, img image.Image) (string, error)
}

// ArtifactStore persists a processed result and returns its location.
type ArtifactStore interface {
	Write(res entity.ReceiptResult) (string, error)
}

type Processor struct {
	Recognizer Recognizer
	Store      ArtifactStore
	Logger     *slog.Logger
}

func NewProcessor(rec Recognizer, store ArtifactStore, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Recognizer: rec, Store: store, Logger: logger}
}

// ProcessFile runs the full chain for one receipt: read, decode,
// binarize, OCR, categorize, extract fields, write the artifact.
// Decode and OCR failures surface as errors for the caller to record;
// an artifact write failure only costs the artifact — the result still
// comes back processed, with an empty OutputLocation.
func (p *Processor) ProcessFile(ctx context.Context, src entity.SourceFile) (entity.ReceiptResult, error) {
	data, err := os.ReadFile(src.Path)
	if err != nil {
		return entity.ReceiptResult{}, fmt.Errorf("read file: %w", err)
	}

	img, format, err := imaging.Decode(data)
	if err != nil {
		return entity.ReceiptResult{}, fmt.Errorf("decode %s: %w", src.Name, err)
	}
	prepared := imaging.PrepareForOCR(img)

	text, err := p.Recognizer.Recognize(ctx, prepared)
	if err != nil {
		return entity.ReceiptResult{}, fmt.Errorf("ocr %s: %w", src.Name, err)
	}

	res := entity.ReceiptResult{
		Source:   src.Path,
		Filename: src.Name,
		Category: classify.Categorize(text),
		RawText:  text,
	}
	if date, ok := fields.ExtractWarrantyDate(text); ok {
		res.WarrantyDate = date
	}
	res.LineItems = fields.ExtractLineItems(text)

	if loc, err := p.Store.Write(res); err != nil {
		p.Logger.Error("processor.artifact.failed", "file", src.Name, "error", err)
	} else {
		res.OutputLocation = loc
	}

	p.Logger.Info("processor.file.ok",
		"file", src.Name,
		"format", format,
		"category", res.Category,
		"line_items", len(res.LineItems),
		"warranty_date_found", res.WarrantyDate != "",
	)
	return res, nil
}
