package preload

import (
	"path/filepath"
	"strings"
)

// DeriveName infers a logical solver name from a library filename: the
// basename without its extension, with a "lib" prefix stripped. For example
// "/opt/highs/lib/libhighs.so" yields "highs" and "highs.dll" yields "highs".
func DeriveName(path string) string {
	stem := filepath.Base(path)
	stem = strings.TrimSuffix(stem, filepath.Ext(stem))
	if len(stem) > 3 && strings.HasPrefix(strings.ToLower(stem), "lib") {
		return stem[3:]
	}
	return stem
}
