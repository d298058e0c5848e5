package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/downquark7/resume-builder/internal/runlog"
)

// RunMeta describes one completed run's artifacts.
type RunMeta struct {
	RunID     string    `json:"run_id"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
	Document  string    `json:"document"`
	LogFile   string    `json:"log_file,omitempty"`
}

// Materialize writes the run's artifacts under outDir: the final document,
// a copy of the run log when one was kept, and a run-metadata JSON. Artifact
// writes are independent and run concurrently; none of them touches the
// gateway.
func Materialize(outDir, doc, model string, log *runlog.Log) (*RunMeta, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	meta := &RunMeta{
		RunID:     uuid.New().String(),
		Model:     model,
		CreatedAt: time.Now().UTC(),
		Document:  filepath.Join(outDir, "resume.yaml"),
	}
	if log.Path() != "" {
		meta.LogFile = filepath.Join(outDir, "run.log")
	}

	var g errgroup.Group

	g.Go(func() error {
		if err := os.WriteFile(meta.Document, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("failed to write resume document: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		data, err := json.MarshalIndent(meta, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize run metadata: %w", err)
		}
		path := filepath.Join(outDir, "run_meta.json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write run metadata: %w", err)
		}
		return nil
	})

	if meta.LogFile != "" {
		g.Go(func() error {
			data, err := os.ReadFile(log.Path())
			if err != nil {
				// no log was ever written; not a failure
				return nil
			}
			if err := os.WriteFile(meta.LogFile, data, 0o644); err != nil {
				return fmt.Errorf("failed to copy run log: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return meta, err
	}
	return meta, nil
}
