// Package emitter writes the generated project tree: it binds the template
// file descriptors for the chosen platform to the configuration record and
// resolved manifest, and writes the results under the target directory.
package emitter

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/jotaeme/appgen/internal/config"
	"github.com/jotaeme/appgen/internal/resolver"
)

// TargetExistsError indicates the target directory exists and is not empty.
type TargetExistsError struct {
	Path string
}

func (e *TargetExistsError) Error() string {
	return fmt.Sprintf("target directory %s already exists and is not empty", e.Path)
}

// Result lists what was written, with content hashes for the blueprint file.
type Result struct {
	Files      []string
	FileHashes map[string]string
}

// Emitter generates a project tree from a configuration record.
type Emitter struct {
	cfg      *config.Config
	manifest *resolver.Manifest
	target   string
	force    bool
}

// New creates an emitter for the given record, manifest and target directory.
func New(cfg *config.Config, manifest *resolver.Manifest, target string) *Emitter {
	return &Emitter{cfg: cfg, manifest: manifest, target: target}
}

// SetForce allows writing into a non-empty target directory.
func (e *Emitter) SetForce(v bool) {
	e.force = v
}

// Generate writes the full project tree. Directories are created before the
// files inside them; each file write is atomic, but there is no rollback if
// a write fails midway.
func (e *Emitter) Generate() (*Result, error) {
	if !e.force {
		if err := checkTargetEmpty(e.target); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(e.target, 0755); err != nil {
		return nil, fmt.Errorf("creating target directory: %w", err)
	}

	rc, err := newRenderContext(e.cfg, e.manifest)
	if err != nil {
		return nil, err
	}

	for _, dir := range directoriesFor(e.cfg) {
		if err := os.MkdirAll(filepath.Join(e.target, dir), 0755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	result := &Result{FileHashes: make(map[string]string)}
	for _, d := range descriptorsFor(e.cfg) {
		if d.When != nil && !d.When(e.cfg) {
			continue
		}

		relPath, renderErr := rc.renderString(d.Path)
		if renderErr != nil {
			return nil, fmt.Errorf("rendering path %s: %w", d.Path, renderErr)
		}
		body, renderErr := rc.render(relPath, d.Template)
		if renderErr != nil {
			return nil, renderErr
		}

		fullPath := filepath.Join(e.target, filepath.FromSlash(relPath))
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return nil, fmt.Errorf("creating directory for %s: %w", relPath, err)
		}
		if err := atomicWrite(fullPath, body); err != nil {
			return nil, fmt.Errorf("writing %s: %w", relPath, err)
		}

		result.Files = append(result.Files, relPath)
		result.FileHashes[relPath] = hashContent(body)
	}

	sort.Strings(result.Files)
	return result, nil
}

// checkTargetEmpty fails when the target exists and contains entries.
func checkTargetEmpty(target string) error {
	f, err := os.Open(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("checking target directory: %w", err)
	}
	defer f.Close()

	if _, err := f.Readdirnames(1); err == io.EOF {
		return nil
	}
	return &TargetExistsError{Path: target}
}

// atomicWrite writes content using a temp file and rename.
func atomicWrite(path string, content []byte) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

func hashContent(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
