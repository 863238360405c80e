package resizer

import (
	"fmt"
	"path"
	"strings"
)

// DeriveKey returns the object key a resized rendition of key is stored
// under: {dir}/{stem}_{width}x{height}.{ext}. The directory prefix is kept
// as-is (omitted when the key has none) and the extension segment is omitted
// for keys without one.
//
// The mapping is deterministic, so the derived key doubles as the cache
// index: re-deriving with the same inputs always reproduces the same string.
func DeriveKey(key string, width, height int) string {
	dir, file := path.Split(key)

	stem, ext := file, ""
	// A dot at position 0 is a hidden-file name, not an extension marker.
	if i := strings.LastIndex(file, "."); i > 0 {
		stem, ext = file[:i], file[i+1:]
	}

	name := fmt.Sprintf("%s_%dx%d", stem, width, height)
	if ext != "" {
		name += "." + ext
	}
	return dir + name
}
