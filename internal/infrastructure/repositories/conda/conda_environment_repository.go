package conda

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/condaops/envsync/internal/domain/entities"
)

// queryTimeout bounds every conda invocation so a hung tool fails the run
// instead of blocking it forever.
const queryTimeout = 2 * time.Minute

// CondaEnvironmentRepository inspects a named conda environment through the
// conda CLI. Package versions are read with the environment's own pip, which
// also sees pip-installed packages that `conda list` misses.
type CondaEnvironmentRepository struct {
	envName string
}

// NewCondaEnvironmentRepository creates an inspector for the named environment.
func NewCondaEnvironmentRepository(envName string) *CondaEnvironmentRepository {
	return &CondaEnvironmentRepository{envName: envName}
}

// Name identifies this environment in diagnostics.
func (it *CondaEnvironmentRepository) Name() string {
	return fmt.Sprintf("conda env %q", it.envName)
}

// condaEnvList mirrors the JSON shape of `conda env list --json`.
type condaEnvList struct {
	Envs []string `json:"envs"`
}

// Validate checks that the named environment exists before any package query.
func (it *CondaEnvironmentRepository) Validate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	output, err := runCommand(ctx, "conda", "env", "list", "--json")
	if err != nil {
		return fmt.Errorf(
			"failed to list conda environments (is conda on the PATH?): %w", err,
		)
	}

	envs, parseErr := parseEnvList(output)
	if parseErr != nil {
		return fmt.Errorf("failed to parse conda env list output: %w", parseErr)
	}

	if !hasEnv(envs, it.envName) {
		return fmt.Errorf(
			"conda environment %q not found; check the name with: conda env list",
			it.envName,
		)
	}

	return nil
}

// parseEnvList decodes `conda env list --json` output into environment paths.
func parseEnvList(output []byte) ([]string, error) {
	var envs condaEnvList
	if err := json.Unmarshal(output, &envs); err != nil {
		return nil, err
	}
	return envs.Envs, nil
}

// hasEnv reports whether any environment path's base name matches name.
func hasEnv(envs []string, name string) bool {
	for _, envPath := range envs {
		if filepath.Base(envPath) == name {
			return true
		}
	}
	return false
}

// pipPackage mirrors one entry of `pip list --format=json`.
type pipPackage struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ListPackages returns the installed distributions in the environment.
func (it *CondaEnvironmentRepository) ListPackages(ctx context.Context) (entities.PackageSet, error) {
	logger.Infof("Querying conda environment %q...", it.envName)

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	output, err := runCommand(ctx,
		"conda", "run", "-n", it.envName,
		"python", "-m", "pip", "list", "--format=json",
	)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to query conda environment %q: %w\nHint: make sure the environment has pip installed: conda install -n %s pip",
			it.envName, err, it.envName,
		)
	}

	set, parseErr := parsePackageList(output)
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse pip output from conda env: %w", parseErr)
	}

	logger.Debugf("Found %d packages in conda environment %q", len(set), it.envName)
	return set, nil
}

// parsePackageList decodes `pip list --format=json` output into a PackageSet.
func parsePackageList(output []byte) (entities.PackageSet, error) {
	var packages []pipPackage
	if err := json.Unmarshal(output, &packages); err != nil {
		return nil, err
	}

	set := make(entities.PackageSet, len(packages))
	for _, pkg := range packages {
		set.Add(pkg.Name, pkg.Version)
	}
	return set, nil
}

// runCommand executes the given command and returns its stdout, surfacing
// the tool's stderr verbatim on a non-zero exit.
func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	output, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%w\n%s", err, exitErr.Stderr)
		}
		return nil, err
	}
	return output, nil
}
