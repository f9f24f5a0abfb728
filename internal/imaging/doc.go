// Package imaging provides the pixel-level operations behind recolor.
//
// It parses colors given as hex strings, swaps one exact RGB value for another,
// and loads and saves PNG files. Every image is handled as a non-premultiplied
// *image.NRGBA. That keeps the alpha plane unchanged, and it keeps the RGB of
// semi-transparent pixels exact through decode, substitution and encode.
//
// # Color Matching
//
// Matching is exact. A pixel is substituted only if its red, green and blue
// channels all equal the source color. The alpha channel is never compared and
// never changed.
//
// # Error Handling
//
// Errors wrap one of the package sentinels so callers can classify them with
// errors.Is:
//   - ErrInvalidColor: malformed hex color string
//   - ErrImageDecode: file cannot be opened or decoded
//   - ErrImageEncode: file cannot be created or encoded
//
// # Thread Safety
//
// All functions are stateless. ReplaceColor never mutates its input.
package imaging
