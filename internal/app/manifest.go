package app

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Manifest records one scenario run. The artifact key depends only on the
// scenario content, so re-running an unchanged scenario lands in the same
// directory.
type Manifest struct {
	RunID       string    `json:"run_id"`
	Function    string    `json:"function"`
	ArtifactKey string    `json:"artifact_key"`
	Rows        int       `json:"rows"`
	CreatedAt   time.Time `json:"created_at"`
}

// ArtifactKey returns a short content hash usable as a directory name.
func ArtifactKey(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:8])
}

// WriteRun writes results.json and manifest.json for a completed scenario
// run under buildDir/runs/<function>-<key>/ and returns the run directory.
func WriteRun(buildDir string, sc *Scenario, scenarioContent []byte, rows []Row) (string, error) {
	key := ArtifactKey(scenarioContent)
	dir := filepath.Join(buildDir, "runs", fmt.Sprintf("%s-%s", sc.Function, key))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create run dir: %w", err)
	}

	results, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, "results.json"), results, 0644); err != nil {
		return "", err
	}

	m := Manifest{
		RunID:       uuid.NewString(),
		Function:    sc.Function,
		ArtifactKey: key,
		Rows:        len(rows),
		CreatedAt:   time.Now().UTC(),
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, "manifest.json"), data, 0644); err != nil {
		return "", err
	}
	return dir, nil
}
