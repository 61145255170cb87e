// Package writeout performs the atomic write of the generated command file.
//
// The buffer is written to a temporary file next to the destination,
// formatted there, and renamed over the old output only after both steps
// succeeded — a failed build never leaves a partial or stale-mixed file.
package writeout

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"
)

// Write stores data at path. formatter, when non-empty, is the re-formatter
// argv run on the temporary file before the rename; its failure aborts the
// write and leaves the previous output untouched.
func Write(path string, data []byte, formatter []string) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	defer os.Remove(tmp) // no-op after a successful rename

	if len(formatter) > 0 {
		if err := format(tmp, formatter); err != nil {
			return err
		}
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// format runs the formatter argv with the file appended.
func format(path string, formatter []string) error {
	args := append(append([]string(nil), formatter[1:]...), path)
	cmd := exec.Command(formatter[0], args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %s\n%w", formatter[0], string(output), err)
	}
	return nil
}
