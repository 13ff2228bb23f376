package repositories

import (
	domainRepos "github.com/condaops/envsync/internal/domain/repositories"
	"github.com/condaops/envsync/internal/scanner"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewInspectorFactory); err != nil {
		return err
	}
	if err := container.Provide(scanner.NewPythonScanner); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *InspectorFactory) domainRepos.InspectorFactory {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *scanner.PythonScanner) domainRepos.ScannerRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
