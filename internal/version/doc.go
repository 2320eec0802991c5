// Package version exposes build metadata of the tool itself, stamped into
// the binary via ldflags, and attaches the `version` subcommand.
//
// This is the tool's own version, unrelated to the manifest version it
// renders into headers.
package version
