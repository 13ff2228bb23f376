package repositories

import (
	domainRepos "github.com/condaops/envsync/internal/domain/repositories"
	"github.com/condaops/envsync/internal/infrastructure/repositories/conda"
	"github.com/condaops/envsync/internal/infrastructure/repositories/venv"
)

// InspectorFactory builds the concrete conda and venv inspectors from
// runtime parameters.
type InspectorFactory struct{}

// NewInspectorFactory creates the production factory.
func NewInspectorFactory() *InspectorFactory {
	return &InspectorFactory{}
}

// Conda returns an inspector for the named conda environment.
func (it *InspectorFactory) Conda(envName string) domainRepos.EnvironmentRepository {
	return conda.NewCondaEnvironmentRepository(envName)
}

// Venv returns an inspector for the virtualenv rooted at path.
func (it *InspectorFactory) Venv(path, packageManager string) domainRepos.EnvironmentRepository {
	return venv.NewVenvEnvironmentRepository(path, packageManager)
}

// ResolvePackageManager resolves an "auto" preference by probing for uv.
func (it *InspectorFactory) ResolvePackageManager(prefer string) string {
	return venv.DetectPackageManager(prefer)
}
