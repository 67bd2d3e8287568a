package entity

import (
	"github.com/aiseeds25/Smartreceiptscannercategorizer/constants"
)

// LineItem is a single (product name, price) pair pulled out of receipt text.
// Price stays a string: it is reported exactly as printed, never computed on.
type LineItem struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// ReceiptResult represents one fully processed receipt for data transfer
// between layers.
type ReceiptResult struct {
	// Source is the path of the input file the result was derived from.
	Source string `json:"source"`
	// Filename is the base name of the source file.
	Filename string `json:"filename"`
	Category constants.Category `json:"category"`
	// WarrantyDate is the detected MM/DD/YYYY string, or empty when the
	// receipt text carried no recognizable warranty date.
	WarrantyDate string     `json:"warranty_date,omitempty"`
	LineItems    []LineItem `json:"line_items,omitempty"`
	// RawText is the normalized OCR output the classification ran on.
	RawText string `json:"raw_text"`
	// OutputLocation is the path of the written artifact; empty when the
	// artifact write failed (the result itself still counts as processed).
	OutputLocation string `json:"output_location,omitempty"`
}
