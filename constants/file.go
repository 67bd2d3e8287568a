package constants

import "strings"

// AllowedExtensions holds the file extensions recognized as receipts
// during directory ingestion. Extensions are stored normalized.
var AllowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"heic": {},
	"pdf":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowedExt reports whether ext names a recognized receipt format.
// The check is case-insensitive and tolerates a leading dot.
func IsAllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}
