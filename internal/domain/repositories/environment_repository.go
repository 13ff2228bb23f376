package repositories

import (
	"context"

	"github.com/condaops/envsync/internal/domain/entities"
)

// EnvironmentRepository abstracts a Python package environment (a conda env
// or a virtualenv). Implementations shell out to the environment's package
// manager; tests substitute stubs.
type EnvironmentRepository interface {
	// Name returns a human-readable identifier for diagnostics
	// (e.g. `conda env "ml"`, `venv at ".venv"`).
	Name() string

	// Validate checks that the environment exists and is usable. A failure
	// here is a user-input error and aborts the run before any scanning.
	Validate(ctx context.Context) error

	// ListPackages returns the installed distributions and their versions.
	ListPackages(ctx context.Context) (entities.PackageSet, error)
}

// InspectorFactory builds environment repositories from runtime parameters.
// The factory keeps the sync command decoupled from the concrete conda/venv
// implementations.
type InspectorFactory interface {
	// Conda returns an inspector for the named conda environment.
	Conda(envName string) EnvironmentRepository

	// Venv returns an inspector for the virtualenv rooted at path, preferring
	// the given package manager ("auto", "uv", or "pip").
	Venv(path, packageManager string) EnvironmentRepository

	// ResolvePackageManager resolves an "auto" preference to the concrete
	// venv-side installer ("uv" or "pip").
	ResolvePackageManager(prefer string) string
}
