//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations — no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/condaops/envsync/internal/domain/entities"
	"github.com/condaops/envsync/internal/domain/repositories"
)

// SpyEnvironmentRepository implements repositories.EnvironmentRepository as a
// configurable spy. Configure the response fields for the methods your test
// exercises, then inspect the call counters to verify behavior.
type SpyEnvironmentRepository struct {
	// --- identity ---
	EnvName string

	// --- Validate ---
	ValidateErr       error
	ValidateCallCount int

	// --- ListPackages ---
	Packages          entities.PackageSet
	ListErr           error
	ListPackagesCalls int
}

var _ repositories.EnvironmentRepository = (*SpyEnvironmentRepository)(nil)

func (s *SpyEnvironmentRepository) Name() string { return s.EnvName }

func (s *SpyEnvironmentRepository) Validate(_ context.Context) error {
	s.ValidateCallCount++
	return s.ValidateErr
}

func (s *SpyEnvironmentRepository) ListPackages(
	_ context.Context,
) (entities.PackageSet, error) {
	s.ListPackagesCalls++
	return s.Packages, s.ListErr
}
