package artifacts

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/condaops/envsync/internal/domain/entities"
)

const (
	requirementsFileMode = 0o644
	scriptFileMode       = 0o755
)

// WriteRequirements writes a pinned requirements file for the given
// distribution names, one "name==version" line per entry, sorted. Names with
// no conda version are written unpinned with a warning. Prior contents are
// overwritten; regeneration is idempotent.
func WriteRequirements(path string, required []string, conda entities.PackageSet) error {
	sorted := make([]string, len(required))
	copy(sorted, required)
	sort.Strings(sorted)

	var sb strings.Builder
	sb.WriteString("# Auto-generated requirements from conda environment\n")
	sb.WriteString("# Generated by envsync\n\n")

	for _, name := range sorted {
		version, ok := conda.Lookup(name)
		if !ok {
			logger.Warnf("%s not found in conda, adding without version pin", name)
			sb.WriteString(name + "\n")
			continue
		}
		sb.WriteString(fmt.Sprintf("%s==%s\n", name, version))
	}

	if err := os.WriteFile(path, []byte(sb.String()), requirementsFileMode); err != nil {
		return fmt.Errorf("failed to write requirements file %q: %w", path, err)
	}

	logger.Infof("Requirements file generated: %s", path)
	return nil
}

// ReadRequirements parses a requirements file back into a PackageSet.
// Comments, blank lines, and unpinned entries are skipped.
func ReadRequirements(path string) (entities.PackageSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open requirements file %q: %w", path, err)
	}
	defer file.Close()

	set := make(entities.PackageSet)
	sc := bufio.NewScanner(file)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, version, ok := strings.Cut(line, "==")
		if !ok {
			continue
		}
		set.Add(name, version)
	}
	if scanErr := sc.Err(); scanErr != nil {
		return nil, fmt.Errorf("failed to read requirements file %q: %w", path, scanErr)
	}

	return set, nil
}

// ScriptParams holds the inputs for sync-script generation.
type ScriptParams struct {
	VenvPath         string
	PackageManager   string // "uv" or "pip"
	RequirementsPath string
}

// WriteSyncScript writes an executable shell script that upgrades the
// package manager if needed and installs the pinned requirements into the
// venv in one pass. Prior contents are overwritten.
func WriteSyncScript(path string, params ScriptParams) error {
	venvAbs, err := filepath.Abs(params.VenvPath)
	if err != nil {
		return fmt.Errorf("failed to resolve venv path: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("#!/bin/bash\n")
	sb.WriteString("# Auto-generated script to synchronize a venv with its conda environment\n")
	sb.WriteString("# Generated by envsync\n")
	sb.WriteString(fmt.Sprintf("# Package manager: %s\n\n", params.PackageManager))
	sb.WriteString("set -e\n\n")

	if params.PackageManager == "uv" {
		sb.WriteString(fmt.Sprintf("VENV_PATH=%q\n", venvAbs))
		sb.WriteString("export VIRTUAL_ENV=\"$VENV_PATH\"\n\n")
		sb.WriteString("# Install uv if it is not available yet\n")
		sb.WriteString("if ! command -v uv > /dev/null 2>&1; then\n")
		sb.WriteString("    python -m pip install --upgrade uv\n")
		sb.WriteString("fi\n\n")
		sb.WriteString("echo 'Starting environment synchronization...'\n")
		sb.WriteString(fmt.Sprintf("uv pip install -r %q\n\n", params.RequirementsPath))
	} else {
		pythonPath := filepath.Join(venvAbs, "bin", "python")
		sb.WriteString(fmt.Sprintf("VENV_PYTHON=%q\n\n", pythonPath))
		sb.WriteString("\"$VENV_PYTHON\" -m pip install --upgrade pip\n\n")
		sb.WriteString("echo 'Starting environment synchronization...'\n")
		sb.WriteString(fmt.Sprintf("\"$VENV_PYTHON\" -m pip install -r %q\n\n", params.RequirementsPath))
	}

	sb.WriteString("echo '✅ Synchronization complete!'\n")

	if writeErr := os.WriteFile(path, []byte(sb.String()), scriptFileMode); writeErr != nil {
		return fmt.Errorf("failed to write sync script %q: %w", path, writeErr)
	}
	if chmodErr := os.Chmod(path, scriptFileMode); chmodErr != nil {
		return fmt.Errorf("failed to mark sync script executable: %w", chmodErr)
	}

	logger.Infof("Sync script generated: %s", path)
	logger.Infof("  Run with: bash %s", path)
	return nil
}
