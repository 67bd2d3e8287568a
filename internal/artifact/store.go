package artifact

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/common"
	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/entity"
)

// FSStore writes artifacts under <root>/<category>/<stem>.txt, creating
// category directories on demand. Safe for concurrent writers: distinct
// receipts only contend when two source files share a stem within the
// same category, and that collision is detected and flagged.
type FSStore struct {
	root   string
	logger *slog.Logger

	mu   sync.Mutex
	seen map[string]string // artifact rel path -> source that wrote it
}

// NewFSStore creates a store rooted at root. The root itself is created
// lazily on first write. A nil logger falls back to slog.Default().
func NewFSStore(root string, logger *slog.Logger) *FSStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSStore{
		root:   root,
		logger: logger,
		seen:   make(map[string]string),
	}
}

// Write renders res and writes it to its category-partitioned location,
// returning the artifact path. An existing file at that path is
// overwritten; when the overwrite happens within the same run (two
// sources sharing a stem and category) a collision warning is logged.
func (s *FSStore) Write(res entity.ReceiptResult) (string, error) {
	stem := strings.TrimSuffix(res.Filename, filepath.Ext(res.Filename))
	rel := filepath.Join(string(res.Category), stem+".txt")

	s.mu.Lock()
	if prev, dup := s.seen[rel]; dup {
		s.logger.Warn("artifact path collision, overwriting",
			"path", rel,
			"previous_source", prev,
			"source", res.Source)
	}
	s.seen[rel] = res.Source
	s.mu.Unlock()

	dir := filepath.Join(s.root, string(res.Category))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", common.WrapError(err, "creating category directory")
	}

	path := filepath.Join(s.root, rel)
	content := Render(res)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", common.WrapError(err, "writing artifact")
	}

	s.logger.Debug("artifact written", "path", path, "bytes", len(content))
	return path, nil
}
