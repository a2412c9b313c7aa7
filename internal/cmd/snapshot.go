package cmd

import (
	"fmt"
	"os"

	"github.com/project-koku/snapdeploy/internal/config"
	oerrors "github.com/project-koku/snapdeploy/internal/errors"
	"github.com/project-koku/snapdeploy/internal/snapshot"
)

// loadSnapshot resolves the snapshot manifest, preferring an explicit file
// over the SNAPSHOT environment value. Files may be YAML or JSON; the
// environment value is always JSON.
func loadSnapshot(cfg *config.Deploy, file string) (*snapshot.Snapshot, error) {
	if file != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading snapshot file: %w", err)
		}
		return snapshot.ParseYAML(raw)
	}

	if !cfg.HasSnapshot() {
		return nil, oerrors.Wrap(oerrors.ErrMissingSnapshot,
			"SNAPSHOT environment variable is not set and no --snapshot-file given")
	}
	return snapshot.Parse([]byte(cfg.Snapshot))
}
