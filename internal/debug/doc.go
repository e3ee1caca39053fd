// Package debug provides optional file-based debug logging.
//
// When the LAYOUT2D_DEBUG environment variable is set to a file path, or the
// CLI's --debug flag is given, log records are appended to that file as
// slog text. Otherwise logging is a no-op.
package debug
