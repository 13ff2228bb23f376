package entities

import "sort"

// defaultNameMap maps Python import names to the distribution names they are
// published under, for the cases where the two differ.
var defaultNameMap = map[string]string{
	"sklearn":   "scikit-learn",
	"cv2":       "opencv-python",
	"PIL":       "Pillow",
	"yaml":      "pyyaml",
	"bs4":       "beautifulsoup4",
	"dotenv":    "python-dotenv",
	"lightning": "pytorch-lightning",
}

// NameMap translates import names to installable distribution names.
// Import names absent from the table map to themselves.
type NameMap struct {
	entries map[string]string
}

// NewNameMap returns the built-in import-to-distribution table.
func NewNameMap() NameMap {
	entries := make(map[string]string, len(defaultNameMap))
	for imp, dist := range defaultNameMap {
		entries[imp] = dist
	}
	return NameMap{entries: entries}
}

// WithExtras returns a copy of the map extended with additional entries.
// Extras override built-in entries on conflict.
func (m NameMap) WithExtras(extras map[string]string) NameMap {
	merged := make(map[string]string, len(m.entries)+len(extras))
	for imp, dist := range m.entries {
		merged[imp] = dist
	}
	for imp, dist := range extras {
		merged[imp] = dist
	}
	return NameMap{entries: merged}
}

// Resolve maps an import name to its distribution name, falling back to the
// import name itself when no entry exists.
func (m NameMap) Resolve(importName string) string {
	if dist, ok := m.entries[importName]; ok {
		return dist
	}
	return importName
}

// ResolveAll maps every import name to its normalized distribution name,
// deduplicated and sorted.
func (m NameMap) ResolveAll(imports []string) []string {
	seen := make(map[string]struct{}, len(imports))
	dists := make([]string, 0, len(imports))
	for _, importName := range imports {
		dist := NormalizeName(m.Resolve(importName))
		if _, dup := seen[dist]; dup {
			continue
		}
		seen[dist] = struct{}{}
		dists = append(dists, dist)
	}
	sort.Strings(dists)
	return dists
}
