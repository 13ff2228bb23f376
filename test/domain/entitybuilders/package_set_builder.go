//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/condaops/envsync/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// PackageSetBuilder helps create test package sets with a fluent interface.
type PackageSetBuilder struct {
	*testkit.BaseBuilder
	packages map[string]string
}

// NewPackageSetBuilder creates a new package-set builder with sensible defaults.
func NewPackageSetBuilder() *PackageSetBuilder {
	return &PackageSetBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		packages:    map[string]string{},
	}
}

// WithPackage adds a package at the given version.
func (b *PackageSetBuilder) WithPackage(name, version string) *PackageSetBuilder {
	b.packages[name] = version
	return b
}

// Build creates the package set (satisfies testkit.Builder interface).
func (b *PackageSetBuilder) Build() interface{} {
	return b.BuildPackageSet()
}

// BuildPackageSet creates the package set with a concrete return type.
func (b *PackageSetBuilder) BuildPackageSet() entities.PackageSet {
	return entities.NewPackageSet(b.packages)
}

// Reset clears the builder state, allowing it to be reused.
func (b *PackageSetBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.packages = map[string]string{}
	return b
}

// Clone creates a deep copy of the PackageSetBuilder.
func (b *PackageSetBuilder) Clone() testkit.Builder {
	packages := make(map[string]string, len(b.packages))
	for name, version := range b.packages {
		packages[name] = version
	}
	return &PackageSetBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		packages:    packages,
	}
}
