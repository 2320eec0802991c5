// Package header renders the generated Version.h document.
//
// Rendering is a pure function of the manifest name and parsed version:
// identical inputs produce byte-identical output, which is what lets the
// generator skip writes and keep build caches warm.
package header
