// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes roster and submission reports to disk: the staff
// list as a readable text report, submissions as CSV, and CV attachments
// extracted from recruitment applications.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Options configures where exports land.
type Options struct {
	// OutputDir is the directory files are written to.
	// Default: current working directory.
	OutputDir string
}

// DefaultOptions exports into the current directory.
func DefaultOptions() *Options {
	return &Options{OutputDir: "."}
}

// write puts data at name under the output directory, creating the
// directory if needed. Returns the full path.
func (o *Options) write(name string, data []byte) (string, error) {
	dir := o.OutputDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// datedName builds "prefix_YYYY-MM-DD.ext".
func datedName(prefix, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s%s", prefix, now.Format("2006-01-02"), ext)
}
