package venv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/condaops/envsync/internal/domain/entities"
)

// queryTimeout bounds every package-manager invocation so a hung tool fails
// the run instead of blocking it forever.
const queryTimeout = 2 * time.Minute

// VenvEnvironmentRepository inspects a Python virtual environment. The
// package list is read with uv when available (much faster) and pip
// otherwise, per the configured preference.
type VenvEnvironmentRepository struct {
	path   string
	prefer string // "auto", "uv", or "pip"
}

// NewVenvEnvironmentRepository creates an inspector for the virtualenv
// rooted at path.
func NewVenvEnvironmentRepository(path, prefer string) *VenvEnvironmentRepository {
	return &VenvEnvironmentRepository{path: path, prefer: prefer}
}

// Name identifies this environment in diagnostics.
func (it *VenvEnvironmentRepository) Name() string {
	return fmt.Sprintf("venv at %q", it.path)
}

// Validate checks that the venv contains a Python interpreter under one of
// the two conventional layouts (bin/ on Unix, Scripts/ on Windows).
func (it *VenvEnvironmentRepository) Validate(_ context.Context) error {
	if _, err := interpreterPath(it.path); err != nil {
		return err
	}
	return nil
}

// pipPackage mirrors one entry of `pip list --format=json`.
type pipPackage struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ListPackages returns the installed distributions in the venv.
func (it *VenvEnvironmentRepository) ListPackages(ctx context.Context) (entities.PackageSet, error) {
	logger.Infof("Querying venv at %q...", it.path)

	pm := DetectPackageManager(it.prefer)
	logger.Infof("Using package manager: %s", pm)

	python, err := interpreterPath(it.path)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var output []byte
	if pm == "uv" {
		absPath, absErr := filepath.Abs(it.path)
		if absErr != nil {
			return nil, fmt.Errorf("failed to resolve venv path: %w", absErr)
		}
		cmd := exec.CommandContext(ctx, "uv", "pip", "list", "--format=json")
		cmd.Env = append(os.Environ(), "VIRTUAL_ENV="+absPath)
		output, err = outputWithStderr(cmd)
	} else {
		cmd := exec.CommandContext(ctx, python, "-m", "pip", "list", "--format=json")
		output, err = outputWithStderr(cmd)
	}
	if err != nil {
		if pm == "uv" {
			return nil, fmt.Errorf(
				"failed to query venv packages with uv: %w\nHint: try running with --package-manager pip",
				err,
			)
		}
		return nil, fmt.Errorf("failed to query venv packages with pip: %w", err)
	}

	set, parseErr := parsePackageList(output)
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse %s output: %w", pm, parseErr)
	}

	logger.Debugf("Found %d packages in venv at %q", len(set), it.path)
	return set, nil
}

// PackageManager reports which package manager a sync script for this venv
// should use, resolving the "auto" preference.
func (it *VenvEnvironmentRepository) PackageManager() string {
	return DetectPackageManager(it.prefer)
}

// interpreterPath locates the venv's Python interpreter, checking the Unix
// bin/ layout first and the Windows Scripts/ layout second.
func interpreterPath(venvPath string) (string, error) {
	candidates := []string{
		filepath.Join(venvPath, "bin", "python"),
		filepath.Join(venvPath, "Scripts", "python.exe"),
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", fmt.Errorf(
		"could not find a Python interpreter in venv at %q (expected bin/python or Scripts/python.exe); create one with: python -m venv %s",
		venvPath, venvPath,
	)
}

// DetectPackageManager resolves the package-manager preference. "auto"
// probes for uv and falls back to pip; an explicit "uv" that is not on the
// PATH degrades to pip with a warning.
func DetectPackageManager(prefer string) string {
	if prefer == "pip" {
		return "pip"
	}

	if uvAvailable() {
		return "uv"
	}

	if prefer == "uv" {
		logger.Warn("uv requested but not found, falling back to pip")
	}
	return "pip"
}

// uvAvailable reports whether a working uv binary is on the PATH.
func uvAvailable() bool {
	if _, err := exec.LookPath("uv"); err != nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return exec.CommandContext(ctx, "uv", "--version").Run() == nil
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

// outputWithStderr runs the command and returns its stdout, surfacing the
// tool's stderr verbatim on a non-zero exit.
func outputWithStderr(cmd *exec.Cmd) ([]byte, error) {
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%w\n%s", err, exitErr.Stderr)
		}
		return nil, err
	}
	return output, nil
}
