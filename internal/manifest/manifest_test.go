package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLoadJSON checks decoding of a JSON manifest, including tolerated comments.
func TestLoadJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), JSONFilename)
	contents := `{
		// library metadata
		"name": "ADS1115",
		"version": "1.2.3",
		"frameworks": ["arduino"],
	}`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	m, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "ADS1115", m.Name)
	require.Equal(t, "1.2.3", m.Version)
}

// TestLoadYAML checks decoding of a YAML manifest.
func TestLoadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), YAMLFilename)
	contents := "name: sensor-hub\nversion: 2.15.7\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	m, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "sensor-hub", m.Name)
	require.Equal(t, "2.15.7", m.Version)
}

// TestLoadDefaults ensures missing name and version fields fall back to defaults.
func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), JSONFilename)
	require.NoError(t, os.WriteFile(path, []byte(`{"author": "nobody"}`), 0o600))

	m, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, DefaultName, m.Name)
	require.Equal(t, DefaultVersion, m.Version)
}

// TestLoadMalformed ensures undecodable input surfaces as an error.
func TestLoadMalformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), JSONFilename)
	require.NoError(t, os.WriteFile(path, []byte(`{"name": `), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

// TestResolve verifies manifest resolution order and the not-found sentinel.
func TestResolve(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := Resolve(dir)
	require.ErrorIs(t, err, ErrNotFound)

	yamlPath := filepath.Join(dir, YAMLFilename)
	require.NoError(t, os.WriteFile(yamlPath, []byte("name: x\n"), 0o600))

	resolved, err := Resolve(dir)
	require.NoError(t, err)
	require.Equal(t, yamlPath, resolved)

	// JSON takes precedence once present.
	jsonPath := filepath.Join(dir, JSONFilename)
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{}`), 0o600))

	resolved, err = Resolve(dir)
	require.NoError(t, err)
	require.Equal(t, jsonPath, resolved)
}

// TestParseVersion covers component extraction, suffix handling,
// the composite encoding and the malformed fallback.
func TestParseVersion(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input     string
		ok        bool
		major     int
		minor     int
		patch     int
		composite int
	}{
		{input: "1.2.3", ok: true, major: 1, minor: 2, patch: 3, composite: 10203},
		{input: "2.15.7", ok: true, major: 2, minor: 15, patch: 7, composite: 21507},
		{input: "0.0.0", ok: true, composite: 0},
		{input: "1.2.3-rc.1", ok: true, major: 1, minor: 2, patch: 3, composite: 10203},
		{input: "10.0.1+build.5", ok: true, major: 10, patch: 1, composite: 100001},
		{input: "abc", ok: false},
		{input: "1.2", ok: false},
		{input: "", ok: false},
	}

	for _, tc := range cases {
		v, ok := ParseVersion(tc.input)
		require.Equal(t, tc.ok, ok, tc.input)
		require.Equal(t, tc.input, v.Full, tc.input)
		require.Equal(t, tc.major, v.Major, tc.input)
		require.Equal(t, tc.minor, v.Minor, tc.input)
		require.Equal(t, tc.patch, v.Patch, tc.input)
		require.Equal(t, tc.composite, v.Composite(), tc.input)
	}
}

// TestVersionOverflows flags minor/patch values the composite encoding cannot hold.
func TestVersionOverflows(t *testing.T) {
	t.Parallel()

	v, ok := ParseVersion("1.100.0")
	require.True(t, ok)
	require.True(t, v.Overflows())

	v, ok = ParseVersion("1.99.99")
	require.True(t, ok)
	require.False(t, v.Overflows())
}

// TestLoadMissingFile ensures a nonexistent path yields a wrapped os error.
func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.True(t, errors.Is(err, os.ErrNotExist))
}
