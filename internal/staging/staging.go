package staging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const fallbackExt = "txt"

// Workspace is the scoped temporary storage for one generation call. Each
// call gets its own directory, so concurrent runs never contend on a path.
// Callers must pair New with a deferred Remove so release runs on every
// exit path.
type Workspace struct {
	dir        string
	sourcePath string
}

// New creates a fresh temporary directory and stages code into it as
// source.<ext>, with ext sanitized from the language identifier.
func New(code, language string) (*Workspace, error) {
	dir, err := os.MkdirTemp("", "astscan-")
	if err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}

	src := filepath.Join(dir, "source."+SanitizeExtension(language))
	if err := os.WriteFile(src, []byte(code), 0o600); err != nil {
		os.RemoveAll(dir)
		return nil, fmt.Errorf("stage source file: %w", err)
	}

	return &Workspace{dir: dir, sourcePath: src}, nil
}

// SourcePath is the absolute path of the staged source file.
func (w *Workspace) SourcePath() string { return w.sourcePath }

// Dir is the workspace's root directory.
func (w *Workspace) Dir() string { return w.dir }

// Remove recursively deletes the workspace. Safe to call more than once.
func (w *Workspace) Remove() {
	if w.dir != "" {
		os.RemoveAll(w.dir)
		w.dir = ""
	}
}

// SanitizeExtension reduces a language identifier to a safe lowercase
// alphanumeric file extension, falling back to a generic one when nothing
// usable survives.
func SanitizeExtension(language string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(language) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return fallbackExt
	}
	return b.String()
}
