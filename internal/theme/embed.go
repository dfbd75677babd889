package theme

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

// EmbeddedThemes holds the themes shipped with the binary under defaults/.
//
//go:embed defaults/*.theme
var EmbeddedThemes embed.FS

// EmbeddedNames lists the embedded theme names without their extension.
func EmbeddedNames() []string {
	entries, err := fs.ReadDir(EmbeddedThemes, "defaults")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".theme") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".theme"))
	}
	sort.Strings(names)
	return names
}
