package generator

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/oshokin/version-header/internal/header"
	"github.com/oshokin/version-header/internal/logger"
	"github.com/oshokin/version-header/internal/manifest"
)

// Options contains inputs for the generation entry point.
type Options struct {
	// ProjectRoot is the project directory supplied by the invoking build
	// environment. Defaults to the current directory.
	ProjectRoot string
	// ManifestPath optionally overrides manifest resolution under ProjectRoot.
	ManifestPath string
}

// Outcome describes what a generation pass did.
type Outcome int

const (
	// OutcomeSkipped means no manifest was found and nothing was generated.
	OutcomeSkipped Outcome = iota
	// OutcomeGenerated means the header was written (created or replaced).
	OutcomeGenerated
	// OutcomeUpToDate means the existing header already matched and was left untouched.
	OutcomeUpToDate
)

// String returns a human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case OutcomeGenerated:
		return "generated"
	case OutcomeUpToDate:
		return "up to date"
	default:
		return "skipped"
	}
}

// Run executes one generation pass.
//
// The pass never fails on a missing manifest or a malformed version: the
// build must not abort merely because there is nothing to generate. Errors
// are reserved for unreadable manifests and filesystem write failures.
func Run(ctx context.Context, opts *Options) (Outcome, error) {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "version-header")

	root := opts.ProjectRoot
	if root == "" {
		root = "."
	}

	manifestPath, err := resolveManifest(root, opts.ManifestPath)
	if errors.Is(err, manifest.ErrNotFound) {
		logger.WarnKV(ctx, "Manifest not found, nothing to generate", "project_root", root)

		return OutcomeSkipped, nil
	} else if err != nil {
		return OutcomeSkipped, fmt.Errorf("resolve manifest: %w", err)
	}

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return OutcomeSkipped, fmt.Errorf("load manifest: %w", err)
	}

	v, ok := manifest.ParseVersion(m.Version)
	if !ok {
		logger.WarnKV(ctx, "Invalid version format, components fall back to zero", "version", m.Version)
	}

	if v.Overflows() {
		logger.WarnKV(ctx, "Minor or patch exceeds two digits, composite integer collides", "version", m.Version)
	}

	outcome, path, err := writeArtifact(root, m.Name, header.Render(m.Name, v))
	if err != nil {
		return outcome, err
	}

	logger.InfoKV(ctx, "Version header "+outcome.String(), "version", m.Version, "path", path)

	return outcome, nil
}

// resolveManifest picks the manifest path: an explicit override wins, the
// project-root convention applies otherwise. An absent override maps to
// manifest.ErrNotFound so both cases degrade the same way.
func resolveManifest(root, override string) (string, error) {
	if override == "" {
		return manifest.Resolve(root)
	}

	if _, err := os.Stat(override); errors.Is(err, os.ErrNotExist) {
		return "", manifest.ErrNotFound
	} else if err != nil {
		return "", fmt.Errorf("stat %s: %w", override, err)
	}

	return override, nil
}
