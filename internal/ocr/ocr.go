// Package ocr shells out to tesseract to turn preprocessed receipt
// images into text.
package ocr

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"time"
)

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	Language    string // default "eng"
	TessdataDir string

	Timeout time.Duration // per-invocation cap; 0 = inherit caller's context
}

type Engine struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

// NewEngine creates an Engine. A nil runner falls back to the os/exec
// implementation; a nil logger falls back to slog.Default().
func NewEngine(cfg Config, runner Runner, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if runner == nil {
		runner = NewExecRunner(logger)
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	return &Engine{cfg: cfg, runner: runner, logger: logger}
}

// Recognize runs tesseract over the given image and returns the
// normalized text. The image is staged as a temporary PNG because
// tesseract reads from a path; the file is removed before returning.
func (e *Engine) Recognize(ctx context.Context, img image.Image) (string, error) {
	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	path, cleanup, err := stageTempPNG(img)
	if err != nil {
		return "", fmt.Errorf("staging image: %w", err)
	}
	defer cleanup()

	// tesseract <file> stdout -l <lang>
	args := []string{path, "stdout", "-l", e.cfg.Language}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w: %s", err, truncate(string(errb), 512))
	}

	text := Normalize(string(out))
	e.logger.Debug("ocr ok",
		"language", e.cfg.Language,
		"duration_ms", time.Since(start).Milliseconds(),
		"text_bytes", len(text),
	)
	return text, nil
}

// stageTempPNG writes img to a temp file and returns its path plus a
// cleanup func. PNG is lossless, so tesseract sees exactly the pixels
// the preprocessing produced.
func stageTempPNG(img image.Image) (string, func(), error) {
	f, err := os.CreateTemp("", "receipt-ocr-*.png")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { _ = os.Remove(f.Name()) }

	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return f.Name(), cleanup, nil
}
