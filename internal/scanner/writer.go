package scanner

import (
	"fmt"
	"os"
	"path/filepath"
)

// StdoutPath selects standard output as the serialization sink.
const StdoutPath = "-"

// WriteOutput writes the serialized snapshot to the configured sink.
// "-" writes to standard output; any other value is a file path, truncating
// existing content. File output goes through a temp file and rename so a
// failed run never leaves a half-written snapshot behind. Failure to open
// or write the sink is fatal for the run.
func WriteOutput(path string, text string) error {
	if path == StdoutPath {
		if _, err := fmt.Fprintln(os.Stdout, text); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	dir := filepath.Dir(path)
	tempFile, err := os.CreateTemp(dir, ".classver-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to open output file %s: %w", path, err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.WriteString(text + "\n"); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	// Rename to final location (atomic operation)
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	return nil
}
