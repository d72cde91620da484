package model

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"cmg/internal/errors"
)

// Load reads schema.json and instance.json from dataDir and returns an
// immutable model handle. Either file may instead be present as
// <name>.json.zst; large instances compress well and are decompressed
// transparently. A missing or unparsable file is fatal: no partial load.
func Load(dataDir string) (*Model, error) {
	schema := &Schema{}
	if err := readJSON(filepath.Join(dataDir, "schema.json"), schema); err != nil {
		return nil, errors.Wrap(errors.ModelLoadFailed, "failed to load schema.json", err)
	}
	if schema.ElementTypes == nil {
		schema.ElementTypes = map[string]map[string]interface{}{}
	}

	instance := &Instance{}
	if err := readJSON(filepath.Join(dataDir, "instance.json"), instance); err != nil {
		return nil, errors.Wrap(errors.ModelLoadFailed, "failed to load instance.json", err)
	}
	applyDefaults(instance)

	return &Model{
		Schema:     schema,
		Instance:   instance,
		SnapshotID: uuid.NewString(),
		DataDir:    dataDir,
	}, nil
}

// applyDefaults replaces nil optional collections with empty ones so the
// engine never needs per-field nil checks on a sparse record.
func applyDefaults(instance *Instance) {
	if instance.Artifacts == nil {
		instance.Artifacts = map[string]Artifact{}
	}
	if instance.Dependencies == nil {
		instance.Dependencies = []Dependency{}
	}
	if instance.Flows == nil {
		instance.Flows = map[string]Flow{}
	}

	for path, a := range instance.Artifacts {
		if a.Exports == nil {
			a.Exports = []string{}
		}
		if a.Tags == nil {
			a.Tags = []string{}
		}
		if a.Children == nil {
			a.Children = []Child{}
		}
		instance.Artifacts[path] = a
	}
}

// readJSON decodes path (or path.zst if the plain file is absent) into v.
func readJSON(path string, v interface{}) error {
	data, err := readMaybeCompressed(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

func readMaybeCompressed(path string) ([]byte, error) {
	if data, err := os.ReadFile(path); err == nil {
		return data, nil
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	f, err := os.Open(path + ".zst")
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s not found (also tried %s.zst)", path, filepath.Base(path))
		}
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	return io.ReadAll(dec)
}
