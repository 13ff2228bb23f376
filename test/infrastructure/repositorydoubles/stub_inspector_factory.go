//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/condaops/envsync/internal/domain/repositories"
)

// StubInspectorFactory implements repositories.InspectorFactory, handing out
// pre-built environment doubles and recording the parameters it was asked for.
type StubInspectorFactory struct {
	CondaRepo repositories.EnvironmentRepository
	VenvRepo  repositories.EnvironmentRepository

	// fixed result for ResolvePackageManager; defaults to echoing the input
	ResolvedManager string

	// spy: parameters received
	CondaEnvNames []string
	VenvPaths     []string
	VenvManagers  []string
}

var _ repositories.InspectorFactory = (*StubInspectorFactory)(nil)

func (s *StubInspectorFactory) Conda(envName string) repositories.EnvironmentRepository {
	s.CondaEnvNames = append(s.CondaEnvNames, envName)
	return s.CondaRepo
}

func (s *StubInspectorFactory) Venv(path, packageManager string) repositories.EnvironmentRepository {
	s.VenvPaths = append(s.VenvPaths, path)
	s.VenvManagers = append(s.VenvManagers, packageManager)
	return s.VenvRepo
}

func (s *StubInspectorFactory) ResolvePackageManager(prefer string) string {
	if s.ResolvedManager != "" {
		return s.ResolvedManager
	}
	return prefer
}
