// Package commands defines the recolor CLI.
//
// Usage
//
//	recolor <input_folder> <output_folder> <old_color_hex> <new_color_hex>
//
// Both colors are six hex digits with an optional leading '#'. They are
// validated before any file is opened.
//
// # Exit Status
//
// The command fails, and the binary exits with status 1, when the argument count
// is wrong, when either color is malformed, when the input folder cannot be read,
// or when any image could not be recolored. Failed images do not stop the run.
package commands
