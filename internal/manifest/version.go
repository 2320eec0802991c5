package manifest

import (
	"regexp"
	"strconv"
)

// versionPattern matches the leading dotted-numeric part of a version string.
// Trailing suffixes (prerelease tags, build metadata) are left unmatched.
var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)`)

// Version is a version string parsed into numeric components.
// Full keeps the original string untruncated, suffix included.
type Version struct {
	Full  string
	Major int
	Minor int
	Patch int
}

// ParseVersion extracts major/minor/patch from the leading X.Y.Z part of s.
// When s does not start with a dotted-numeric triple, all components are zero
// and the second return value is false; Full still carries s verbatim.
func ParseVersion(s string) (Version, bool) {
	v := Version{Full: s}

	groups := versionPattern.FindStringSubmatch(s)
	if groups == nil {
		return v, false
	}

	v.Major = mustAtoi(groups[1])
	v.Minor = mustAtoi(groups[2])
	v.Patch = mustAtoi(groups[3])

	return v, true
}

// Composite encodes the components as major*10000 + minor*100 + patch.
// The formula is contractual: downstream headers compare against it, so it is
// never widened even though minor/patch values over 99 collide.
func (v Version) Composite() int {
	return v.Major*10000 + v.Minor*100 + v.Patch
}

// Overflows reports whether minor or patch exceeds the two decimal digits
// the composite encoding can represent.
func (v Version) Overflows() bool {
	return v.Minor > 99 || v.Patch > 99
}

// mustAtoi converts digits already validated by versionPattern.
func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)

	return n
}
