package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/filestore"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

// loadSettings resolves the effective configuration: built-in defaults,
// then the --config file, then environment variables.
func loadSettings() (config.Config, error) {
	cfg := config.Config{}
	if rootConfigPath != "" {
		loaded, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
		if rootVerbose {
			log.Printf("Loaded config from %s", rootConfigPath)
		}
	}

	merged := cfg.MergeWithDefaults(config.Defaults())
	merged.ApplyEnv()
	if rootVerbose {
		merged.Verbose = true
	}
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// logger returns the logger store repairs are reported on
func logger() *log.Logger {
	if rootVerbose {
		return log.Default()
	}
	return log.New(io.Discard, "", 0)
}

func printer() *observability.Printer {
	return observability.NewPrinter(os.Stdout)
}

// loadSnapshot reads a snapshot file and checks it against the snapshot
// schema. Structurally valid content is returned unclamped.
func loadSnapshot(path string) (types.Snapshot, error) {
	data, snap, err := filestore.ReadSnapshotFile(path)
	if data == nil {
		return types.Snapshot{}, err
	}
	if verr := schemas.ValidateSnapshot(data); verr != nil {
		return types.Snapshot{}, fmt.Errorf("invalid snapshot %s: %w", path, verr)
	}
	if err != nil {
		return types.Snapshot{}, err
	}
	return snap, nil
}

// openStore loads a snapshot file into a store, clamping it
func openStore(path string) (*store.Store, error) {
	snap, err := loadSnapshot(path)
	if err != nil {
		return nil, err
	}
	return store.New(store.WithSnapshot(snap), store.WithLogger(logger())), nil
}

// loadTheme overlays the theme file at path onto base
func loadTheme(path string, base types.ThemeConfig) (types.ThemeConfig, error) {
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read theme: %w", err)
	}
	if err := schemas.ValidateTheme(data); err != nil {
		return base, fmt.Errorf("invalid theme %s: %w", path, err)
	}
	var theme types.ThemeConfig
	if err := json.Unmarshal(data, &theme); err != nil {
		return base, fmt.Errorf("failed to parse theme: %w", err)
	}
	return base.Merge(theme), nil
}

// writeOutput writes data to path, or stdout when path is empty or "-"
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
