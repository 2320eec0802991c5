package header

import (
	"fmt"
	"strings"

	"github.com/oshokin/version-header/internal/manifest"
)

const (
	// Filename is the fixed name of the generated artifact.
	Filename = "Version.h"

	// IncludeDirname is the include tree root under the project root.
	IncludeDirname = "include"
)

// Render produces the full header document for the given manifest name and
// parsed version. The namespace is the upper-cased name; the version string
// constant keeps the full manifest value, suffix included.
func Render(name string, v manifest.Version) []byte {
	namespace := strings.ToUpper(name)

	var b strings.Builder

	b.WriteString("/// @file Version.h\n")
	b.WriteString("/// @brief Auto-generated version information\n")
	b.WriteString("/// @warning DO NOT EDIT - Generated from the project manifest by version-header\n")
	b.WriteString("#pragma once\n\n")

	fmt.Fprintf(&b, "namespace %s {\n\n", namespace)

	b.WriteString("/// Library version string\n")
	fmt.Fprintf(&b, "static constexpr const char* VERSION = %q;\n\n", v.Full)

	b.WriteString("/// Version components\n")
	fmt.Fprintf(&b, "static constexpr int VERSION_MAJOR = %d;\n", v.Major)
	fmt.Fprintf(&b, "static constexpr int VERSION_MINOR = %d;\n", v.Minor)
	fmt.Fprintf(&b, "static constexpr int VERSION_PATCH = %d;\n\n", v.Patch)

	b.WriteString("/// Version as single integer (major * 10000 + minor * 100 + patch)\n")
	fmt.Fprintf(&b, "static constexpr int VERSION_INT = %d;\n\n", v.Composite())

	fmt.Fprintf(&b, "} // namespace %s\n", namespace)

	return []byte(b.String())
}
