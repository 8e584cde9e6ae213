package workspace

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	ferrors "git.home.luguber.info/inful/vados/internal/foundation/errors"
	"git.home.luguber.info/inful/vados/internal/logfields"
)

// Manager owns one timestamped workspace directory.
type Manager struct {
	baseDir string
	dir     string
}

// NewManager returns a Manager creating workspaces below baseDir, or the
// system temporary directory when baseDir is empty.
func NewManager(baseDir string) *Manager {
	if baseDir == "" {
		baseDir = os.TempDir()
	}
	return &Manager{baseDir: baseDir}
}

// Create makes a fresh workspace directory named vados-<timestamp>-<random>.
func (m *Manager) Create() error {
	if err := os.MkdirAll(m.baseDir, 0o750); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "create workspace base directory").
			WithContext("path", m.baseDir).
			Build()
	}
	prefix := fmt.Sprintf("vados-%s-", time.Now().Format("20060102-150405"))
	dir, err := os.MkdirTemp(m.baseDir, prefix)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "create workspace directory").
			WithContext("path", m.baseDir).
			Build()
	}
	m.dir = dir
	slog.Debug("Created workspace", logfields.Path(dir))
	return nil
}

// Path returns the workspace directory, empty before Create.
func (m *Manager) Path() string {
	return m.dir
}

// Subdir returns the path of name inside the workspace, creating it.
func (m *Manager) Subdir(name string) (string, error) {
	if m.dir == "" {
		return "", ferrors.InternalError("workspace not created").Build()
	}
	sub := filepath.Join(m.dir, name)
	if err := os.MkdirAll(sub, 0o750); err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryFileSystem, "create workspace subdirectory").
			WithContext("path", sub).
			Build()
	}
	return sub, nil
}

// Cleanup removes the workspace. It is safe to call more than once.
func (m *Manager) Cleanup() error {
	if m.dir == "" {
		return nil
	}
	if err := os.RemoveAll(m.dir); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "clean up workspace").
			WithContext("path", m.dir).
			Build()
	}
	slog.Debug("Cleaned up workspace", logfields.Path(m.dir))
	m.dir = ""
	return nil
}
