package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Logging  LoggingConfig
	OCR      OCRConfig
	Run      RunConfig
	Warranty WarrantyConfig
	Watch    WatchConfig
	Export   ExportConfig
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level string
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	TesseractPath string
	Language      string
	TessdataDir   string
	Timeout       time.Duration
}

// RunConfig holds batch-run configuration
type RunConfig struct {
	Workers int
}

// WarrantyConfig holds warranty-alerting configuration
type WarrantyConfig struct {
	ThresholdDays int
}

// WatchConfig holds directory-watch configuration
type WatchConfig struct {
	Debounce time.Duration
}

// ExportConfig holds spreadsheet-export configuration
type ExportConfig struct {
	// Path is where the XLSX run report is written; empty disables export.
	Path string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: getEnv("RECEIPTS_LOG_LEVEL", "info"),
		},
		OCR: OCRConfig{
			TesseractPath: getEnv("RECEIPTS_TESSERACT_PATH", "tesseract"),
			Language:      getEnv("RECEIPTS_TESSERACT_LANG", "eng"),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			Timeout:       getEnvAsDuration("RECEIPTS_OCR_TIMEOUT", 60*time.Second),
		},
		Run: RunConfig{
			Workers: getEnvAsInt("RECEIPTS_WORKERS", 1),
		},
		Warranty: WarrantyConfig{
			ThresholdDays: getEnvAsInt("RECEIPTS_WARRANTY_THRESHOLD_DAYS", 7),
		},
		Watch: WatchConfig{
			Debounce: getEnvAsDuration("RECEIPTS_WATCH_DEBOUNCE", 500*time.Millisecond),
		},
		Export: ExportConfig{
			Path: getEnv("RECEIPTS_EXPORT_PATH", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.OCR.TesseractPath == "" {
		return NewAppError("CONFIG_ERROR", "RECEIPTS_TESSERACT_PATH is required", ErrInvalidInput)
	}
	if c.OCR.Language == "" {
		return NewAppError("CONFIG_ERROR", "RECEIPTS_TESSERACT_LANG is required", ErrInvalidInput)
	}
	if c.Run.Workers < 1 {
		return NewAppError("CONFIG_ERROR", "RECEIPTS_WORKERS must be at least 1", ErrInvalidInput)
	}
	if c.Warranty.ThresholdDays < 0 {
		return NewAppError("CONFIG_ERROR", "RECEIPTS_WARRANTY_THRESHOLD_DAYS must not be negative", ErrInvalidInput)
	}
	return nil
}
