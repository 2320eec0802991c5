// Package manifest reads the project manifest that drives header generation
// and parses its version field into numeric components.
//
// A manifest is resolved under the project root as library.json (JSON, with
// comments and trailing commas tolerated) or library.yaml. Only the name and
// version fields are consumed; everything else is ignored.
package manifest
