package batch

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestName is the file written into each output directory.
const ManifestName = "manifest.json"

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Name      string `json:"name"`
	Source    string `json:"source,omitempty"`
	Image     string `json:"image"`
	Format    string `json:"format"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	Checksum  string `json:"xxhash,omitempty"`
	ElapsedMS int64  `json:"elapsed_ms"`
	Error     string `json:"error,omitempty"`
}

// WriteManifest writes the results as indented JSON to path. Image paths
// are relative to the manifest's directory.
func WriteManifest(path string, results []Result) error {
	dir := filepath.Dir(path)
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		image := r.Output
		if rel, err := filepath.Rel(dir, r.Output); err == nil {
			image = filepath.ToSlash(rel)
		}
		entries[i] = ManifestEntry{
			Name:      r.Name,
			Source:    r.Source,
			Image:     image,
			Format:    r.Format,
			Width:     r.Width,
			Height:    r.Height,
			ElapsedMS: r.Elapsed.Milliseconds(),
			Error:     r.Error,
		}
		if r.Success {
			entries[i].Checksum = fmt.Sprintf("%016x", r.Checksum)
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// WriteManifests groups results by output directory and writes one manifest
// into each. It returns the manifest paths in first-seen order.
func WriteManifests(results []Result) ([]string, error) {
	var dirs []string
	byDir := make(map[string][]Result)
	for _, r := range results {
		dir := filepath.Dir(r.Output)
		if _, ok := byDir[dir]; !ok {
			dirs = append(dirs, dir)
		}
		byDir[dir] = append(byDir[dir], r)
	}

	var paths []string
	var errs []error
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			errs = append(errs, fmt.Errorf("manifest: %w", err))
			continue
		}
		path := filepath.Join(dir, ManifestName)
		if err := WriteManifest(path, byDir[dir]); err != nil {
			errs = append(errs, fmt.Errorf("manifest %s: %w", path, err))
			continue
		}
		paths = append(paths, path)
	}
	return paths, errors.Join(errs...)
}
