// pkg/split/manifest.go
package split

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Manifest is the JSON sidecar written next to the chunks when requested.
// It records everything the verify command needs to re-check a chunk set.
type Manifest struct {
	Source     string        `json:"source"`
	SourceSize int64         `json:"source_size"`
	SourceHash string        `json:"source_hash,omitempty"`
	Strategy   string        `json:"strategy"`
	Codec      string        `json:"codec,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	Chunks     []ChunkRecord `json:"chunks"`
}

// ManifestName derives the manifest file name from the original file name.
func ManifestName(original string) string {
	base := filepath.Base(original)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + "_manifest.json"
}

func writeManifest(dir string, result *Result) (string, error) {
	m := &Manifest{
		Source:     result.Source.Path,
		SourceSize: result.Source.Size,
		SourceHash: result.SourceHash,
		Strategy:   result.Strategy,
		Codec:      string(result.Codec),
		CreatedAt:  time.Now().UTC(),
		Chunks:     result.Chunks,
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode manifest: %w", err)
	}
	path := filepath.Join(dir, ManifestName(result.Source.Path))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	return path, nil
}

// LoadManifest reads a manifest file written by a split run.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}
