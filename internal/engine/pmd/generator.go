package pmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"

	"github.com/vd09-projects/ast-llm-rule-creater/internal/engine"
	"github.com/vd09-projects/ast-llm-rule-creater/internal/staging"
)

const (
	// DefaultBinary is the PMD CLI entry point expected on PATH.
	DefaultBinary = "pmd"

	// DefaultMaxOutputBytes caps how much engine stdout is buffered.
	DefaultMaxOutputBytes = 10 << 20
)

// Generator invokes the PMD CLI to dump an XML AST for one source text.
// Each call stages the source into its own temporary workspace and removes
// it before returning, success or not.
type Generator struct {
	Binary         string
	MaxOutputBytes int64
}

func NewGenerator(binary string, maxOutputBytes int64) *Generator {
	if binary == "" {
		binary = DefaultBinary
	}
	if maxOutputBytes <= 0 {
		maxOutputBytes = DefaultMaxOutputBytes
	}
	return &Generator{Binary: binary, MaxOutputBytes: maxOutputBytes}
}

func (g *Generator) GenerateAstXML(ctx context.Context, code, language string) (string, error) {
	ws, err := staging.New(code, language)
	if err != nil {
		return "", fmt.Errorf("%w: %v", engine.ErrGenerationFailed, err)
	}
	defer ws.Remove()

	stdout := newCapWriter(g.MaxOutputBytes)
	var stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, g.Binary,
		"ast-dump",
		"--format", "xml",
		"--language", language,
		"--file", ws.SourcePath(),
	)
	cmd.Stdout = stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", g.translate(err, &stderr)
	}
	if stdout.truncated {
		return "", fmt.Errorf("%w: ast dump exceeded %d bytes", engine.ErrGenerationFailed, g.MaxOutputBytes)
	}
	return stdout.String(), nil
}

// translate maps a subprocess failure onto the run taxonomy: a missing
// executable is its own actionable condition, everything else carries the
// engine's diagnostic text.
func (g *Generator) translate(err error, stderr *bytes.Buffer) error {
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: '%s' not found on PATH; install PMD or point the config at its binary", engine.ErrToolNotFound, g.Binary)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		diag := strings.TrimSpace(stderr.String())
		if diag == "" {
			diag = exitErr.String()
		}
		return fmt.Errorf("%w: %s", engine.ErrGenerationFailed, diag)
	}
	return fmt.Errorf("%w: %v", engine.ErrGenerationFailed, err)
}

// capWriter buffers up to max bytes and flags anything beyond, so a
// runaway engine cannot grow the dump without bound.
type capWriter struct {
	buf       bytes.Buffer
	max       int64
	truncated bool
}

func newCapWriter(max int64) *capWriter { return &capWriter{max: max} }

func (w *capWriter) Write(p []byte) (int, error) {
	room := w.max - int64(w.buf.Len())
	if room <= 0 {
		w.truncated = true
		return len(p), nil
	}
	if int64(len(p)) > room {
		w.truncated = true
		w.buf.Write(p[:room])
		return len(p), nil
	}
	return w.buf.Write(p)
}

func (w *capWriter) String() string { return w.buf.String() }
