package preview

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// StyleTarget receives synthesized preview stylesheets. Implementations
// must tolerate repeated Apply calls with identical content.
type StyleTarget interface {
	Apply(css string) error
}

// MemoryTarget holds the most recent stylesheet in memory. Used by the
// TUI preview pane and by tests.
type MemoryTarget struct {
	mu      sync.Mutex
	css     string
	applies int
}

func NewMemoryTarget() *MemoryTarget {
	return &MemoryTarget{}
}

func (t *MemoryTarget) Apply(css string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.css = css
	t.applies++
	return nil
}

// CSS returns the last applied stylesheet.
func (t *MemoryTarget) CSS() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.css
}

// Applies returns how many stylesheets have been applied.
func (t *MemoryTarget) Applies() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.applies
}

// FileTarget writes each stylesheet to a file. The write goes through a
// temp file and rename so readers never observe a torn sheet.
type FileTarget struct {
	path string
}

func NewFileTarget(path string) *FileTarget {
	return &FileTarget{path: path}
}

func (t *FileTarget) Apply(css string) error {
	dir := filepath.Dir(t.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating stylesheet directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".preview-*.css")
	if err != nil {
		return fmt.Errorf("creating temp stylesheet: %w", err)
	}
	if _, err := tmp.WriteString(css); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing stylesheet: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing stylesheet: %w", err)
	}
	if err := os.Rename(tmp.Name(), t.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing stylesheet: %w", err)
	}
	return nil
}
