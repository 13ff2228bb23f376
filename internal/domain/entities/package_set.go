package entities

import "strings"

// PackageSet maps normalized distribution names to installed version strings.
// One set is built per inspected environment.
type PackageSet map[string]string

// NormalizeName canonicalizes a distribution name for lookup: lowercase with
// underscores folded to hyphens, so "Typing_Extensions" and
// "typing-extensions" resolve to the same entry.
func NormalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "_", "-")
}

// NewPackageSet builds a PackageSet from raw name/version pairs, normalizing
// every key.
func NewPackageSet(raw map[string]string) PackageSet {
	set := make(PackageSet, len(raw))
	for name, version := range raw {
		set[NormalizeName(name)] = version
	}
	return set
}

// Add inserts a single package, normalizing its name.
func (s PackageSet) Add(name, version string) {
	s[NormalizeName(name)] = version
}

// Lookup returns the installed version for a distribution name, tolerating
// case and hyphen/underscore variations.
func (s PackageSet) Lookup(name string) (string, bool) {
	version, ok := s[NormalizeName(name)]
	return version, ok
}
