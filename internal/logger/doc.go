// Package logger wraps zap with a global sugared logger configured for
// console output, context helpers (ToContext/FromContext/WithName) and
// level parsing utilities.
//
// The generator accepts a context and extracts the logger from it, so status
// lines stay scoped without threading a logger through every call.
package logger
