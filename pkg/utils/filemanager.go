// =============================================================================
// Certificate Payload Builder - File Manager Utility
// =============================================================================
//
// This module provides the small set of file operations the builder needs:
//   - Writing an output file (create or truncate) with a guaranteed close
//   - Checking whether an optional file exists
//
// WRITE STRATEGY:
//   Output is written in place. There is no temp-file-and-rename step, so a
//   failure during the write can leave a truncated file behind. Callers
//   build the full content in memory first to keep that window small.
//
// =============================================================================

package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// OutputFileMode is the permission used when an output file is created.
const OutputFileMode fs.FileMode = 0644

// WriteFile writes data to path, creating the file or truncating an existing
// one. The parent directory must already exist. The file is closed on every
// path and a close failure is reported.
func WriteFile(path string, data []byte) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, OutputFileMode)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsNotExist reports whether err means a file was missing.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
