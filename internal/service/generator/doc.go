// Package generator implements the version header generation pass.
//
// Run resolves the manifest under the project root, renders the header and
// writes it only when the bytes differ from what is already on disk. A
// missing manifest or a malformed version degrades to a warning; only
// filesystem failures surface as errors, since silently losing the artifact
// would corrupt downstream builds.
package generator
