// Package ingest finds candidate receipt files, either by one-shot
// directory enumeration or by watching a directory for arrivals.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aiseeds25/Smartreceiptscannercategorizer/constants"
	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/entity"
)

// Stats aggregates one directory enumeration.
type Stats struct {
	Scanned uint32
	Matched uint32
}

// ListDir enumerates dir non-recursively and keeps the entries whose
// extension names a recognized receipt format; everything else is
// silently ignored. Results follow os.ReadDir's lexical filename order,
// which keeps run output deterministic.
func ListDir(dir string) ([]entity.SourceFile, Stats, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("read dir: %w", err)
	}

	var stats Stats
	var files []entity.SourceFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		stats.Scanned++
		ext := constants.NormalizeExt(filepath.Ext(e.Name()))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			continue
		}
		stats.Matched++
		files = append(files, entity.SourceFile{
			Path: filepath.Join(dir, e.Name()),
			Name: e.Name(),
			Ext:  ext,
		})
	}
	return files, stats, nil
}
