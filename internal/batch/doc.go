// Package batch runs a color substitution over every PNG file in a folder.
//
// A run is a single linear pass. The output folder is created if needed.
// The input folder is listed and filtered to ".png" names, matched
// case-insensitively, and the names are sorted. Each file is then loaded,
// recolored and saved under the same name in the output folder, one at a time.
//
// # Failure Policy
//
// A missing or unreadable input folder aborts the run before any file is
// touched. A file that cannot be decoded or written is logged and skipped. The
// run continues, and the returned error wraps ErrIncomplete once every file has
// been attempted. Outputs already written are never rolled back.
package batch
