package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings is the optional file-based configuration. Every field has a
// default; CLI flags override whatever the file provides.
type Settings struct {
	ScanPaths      []string          `yaml:"scan_paths"`
	LocalPackages  []string          `yaml:"local_packages"`
	PackageMap     map[string]string `yaml:"package_map"`
	StdlibExtras   []string          `yaml:"stdlib_extras"`
	PackageManager string            `yaml:"package_manager"`
	Output         OutputSettings    `yaml:"output"`
}

// OutputSettings holds the generated artifact paths.
type OutputSettings struct {
	Requirements string `yaml:"requirements"`
	SyncScript   string `yaml:"sync_script"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{
		ScanPaths:      []string{"scripts", "src"},
		PackageManager: "auto",
		Output: OutputSettings{
			Requirements: "requirements_from_conda.txt",
			SyncScript:   "sync_venv.sh",
		},
	}
}

// NewSettings reads and parses a configuration file, filling unset fields
// with defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if validateErr := validateSettings(settings); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".envsync.yaml",
		".envsync.yml",
		"envsync.yaml",
		"envsync.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// validateSettings checks for values the rest of the run cannot recover from.
func validateSettings(settings *Settings) error {
	if err := ValidatePackageManager(settings.PackageManager); err != nil {
		return err
	}

	if len(settings.ScanPaths) == 0 {
		return errors.New("scan_paths must have at least one entry")
	}

	return nil
}

// ValidatePackageManager rejects package-manager preferences outside the
// supported set, whether they come from the config file or a flag.
func ValidatePackageManager(value string) error {
	switch value {
	case "", "auto", "uv", "pip":
		return nil
	default:
		return fmt.Errorf(
			"package manager must be one of auto, uv, pip (got %q)", value,
		)
	}
}
