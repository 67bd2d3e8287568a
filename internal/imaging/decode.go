// Package imaging turns raw receipt files into the single-channel,
// thresholded images the OCR engine wants.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder

	"github.com/gen2brain/go-fitz"
	"github.com/gen2brain/heic"
)

// Decode sniffs the payload format and decodes it into an in-memory image.
// PDFs render their first page only; receipts are near-always single page.
// The returned format is "pdf", "heic", or whatever the standard library
// decoder registered ("jpeg", "png").
func Decode(data []byte) (image.Image, string, error) {
	switch {
	case isPDF(data):
		img, err := renderPDFPage(data)
		if err != nil {
			return nil, "", err
		}
		return img, "pdf", nil
	case isHEIC(data):
		img, err := heic.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, "", fmt.Errorf("decoding HEIC image: %w", err)
		}
		return img, "heic", nil
	default:
		img, format, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, "", fmt.Errorf("decoding image: %w", err)
		}
		return img, format, nil
	}
}

// renderPDFPage rasterizes the first page of a PDF.
func renderPDFPage(data []byte) (image.Image, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer doc.Close()

	img, err := doc.Image(0)
	if err != nil {
		return nil, fmt.Errorf("rendering PDF page: %w", err)
	}
	return img, nil
}

// isPDF checks for the PDF file header.
func isPDF(data []byte) bool {
	return bytes.HasPrefix(data, []byte("%PDF-"))
}

// isHEIC checks the ftyp box at offset 4 for HEIC/HEIF brands, the usual
// container signature for iPhone photos.
func isHEIC(data []byte) bool {
	if len(data) < 12 || string(data[4:8]) != "ftyp" {
		return false
	}
	switch string(data[8:12]) {
	case "heic", "heif", "mif1", "msf1":
		return true
	}
	return false
}
