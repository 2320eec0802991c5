package generator

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oshokin/version-header/internal/header"
)

const (
	// defaultFileMode is the permission for the generated header.
	defaultFileMode = 0o644

	// defaultDirMode is the permission for created include directories.
	defaultDirMode = 0o755
)

// writeArtifact places contents at <root>/include/<name>/Version.h, creating
// parent directories as needed. When the existing file already holds the same
// bytes, nothing is written and the mtime is preserved so downstream build
// caches stay valid.
func writeArtifact(root, name string, contents []byte) (Outcome, string, error) {
	path := filepath.Join(root, header.IncludeDirname, name, header.Filename)

	existing, err := os.ReadFile(path)
	switch {
	case err == nil && bytes.Equal(existing, contents):
		return OutcomeUpToDate, path, nil
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return OutcomeSkipped, path, fmt.Errorf("read existing header: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(path), defaultDirMode); err != nil {
		return OutcomeSkipped, path, fmt.Errorf("create include directory: %w", err)
	}

	if err = os.WriteFile(path, contents, defaultFileMode); err != nil {
		return OutcomeSkipped, path, fmt.Errorf("write header: %w", err)
	}

	return OutcomeGenerated, path, nil
}
