package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Manifest holds the fields of the project manifest consumed by the generator.
type Manifest struct {
	// Name identifies the library; it names the output directory and,
	// upper-cased, the rendered namespace.
	Name string `json:"name" yaml:"name"`
	// Version is the full version string, including any suffix.
	Version string `json:"version" yaml:"version"`
}

const (
	// JSONFilename is the conventional JSON manifest name under the project root.
	JSONFilename = "library.json"

	// YAMLFilename is the conventional YAML manifest name under the project root.
	YAMLFilename = "library.yaml"

	// DefaultName substitutes a missing name field.
	DefaultName = "DEVICE"

	// DefaultVersion substitutes a missing version field.
	DefaultVersion = "0.0.0"
)

// ErrNotFound is returned by Resolve when no manifest exists under the project root.
var ErrNotFound = errors.New("manifest not found")

// Resolve locates the manifest under the project root, preferring
// library.json over library.yaml. It returns ErrNotFound when neither exists.
func Resolve(projectRoot string) (string, error) {
	for _, name := range []string{JSONFilename, YAMLFilename} {
		path := filepath.Join(projectRoot, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", path, err)
		}
	}

	return "", ErrNotFound
}

// Load reads and decodes the manifest at the provided path, applying defaults
// for missing fields. The format is chosen by file extension: .yaml/.yml is
// decoded as YAML, everything else as JSON with comments stripped first.
func Load(path string) (*Manifest, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(contents, &m); err != nil {
			return nil, fmt.Errorf("decode manifest: %w", err)
		}
	default:
		if err = json.Unmarshal(jsonc.ToJSON(contents), &m); err != nil {
			return nil, fmt.Errorf("decode manifest: %w", err)
		}
	}

	if m.Name == "" {
		m.Name = DefaultName
	}

	if m.Version == "" {
		m.Version = DefaultVersion
	}

	return &m, nil
}
