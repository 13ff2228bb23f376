package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/condaops/envsync/internal/domain/commands"
	"github.com/condaops/envsync/internal/domain/entities"
)

// SyncController handles the "sync" subcommand (full reconciliation).
type SyncController struct {
	command commands.Sync
}

// NewSyncController creates a new SyncController.
func NewSyncController(command commands.Sync) *SyncController {
	return &SyncController{command: command}
}

// GetBind returns the Cobra command metadata for the sync controller.
func (it *SyncController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "sync",
		Short: "Compare a venv against a conda environment and generate sync files",
		Long: `Scan the source tree for imported packages, query the conda environment
(the version of record) and the venv, and report version mismatches,
packages missing from the venv, and packages absent from conda.

Unless --no-generate-files is set, a pinned requirements file and an
executable sync script are (re)generated from the conda-side versions.`,
	}
}

// Execute runs the reconciliation.
func (it *SyncController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	condaEnv, _ := cmd.Flags().GetString("conda-env")
	venvPath, _ := cmd.Flags().GetString("venv-path")
	noGenerate, _ := cmd.Flags().GetBool("no-generate-files")
	verbose, _ := cmd.Flags().GetBool("verbose")

	opts := entities.SyncOptions{
		CondaEnv:           condaEnv,
		VenvPath:           venvPath,
		ScanPaths:          stringSliceOr(cmd, "scan-paths", settings.ScanPaths),
		LocalPackages:      stringSliceOr(cmd, "local-packages", settings.LocalPackages),
		PackageManager:     stringOr(cmd, "package-manager", settings.PackageManager),
		OutputRequirements: stringOr(cmd, "output-requirements", settings.Output.Requirements),
		OutputSyncScript:   stringOr(cmd, "output-sync-script", settings.Output.SyncScript),
		NoGenerateFiles:    noGenerate,
		Verbose:            verbose,
	}

	return it.command.Execute(ctx, settings, opts)
}

// AddFlags adds the sync-specific flags to the given Cobra command.
func (it *SyncController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("conda-env", "", "Name of the conda environment (the version of record)")
	cmd.Flags().String("venv-path", "", "Path to the Python venv directory")
	cmd.Flags().StringSlice("scan-paths", nil, "Directories to scan for imports")
	cmd.Flags().StringSlice("local-packages", nil, "Project-local import names to exclude")
	cmd.Flags().String("package-manager", "", "Venv-side installer to prefer: auto, uv, or pip")
	cmd.Flags().String("output-requirements", "", "Output path for the pinned requirements file")
	cmd.Flags().String("output-sync-script", "", "Output path for the sync script")
	cmd.Flags().Bool("no-generate-files", false, "Run comparison and print the report only")

	_ = cmd.MarkFlagRequired("conda-env")
	_ = cmd.MarkFlagRequired("venv-path")
}

// loadSettings resolves the settings file: an explicit --config path wins,
// then an auto-detected file, then built-in defaults.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")

	if configPath == "" {
		detected, err := entities.FindConfigFile()
		if err != nil {
			logger.Debug("No config file found, using defaults")
			return entities.DefaultSettings(), nil
		}
		configPath = detected
	}

	logger.Infof("Using config file: %s", configPath)
	return entities.NewSettings(configPath)
}

// stringOr returns the flag value when it was set on the command line,
// falling back to the settings value.
func stringOr(cmd *cobra.Command, flag, fallback string) string {
	if cmd.Flags().Changed(flag) {
		value, _ := cmd.Flags().GetString(flag)
		return value
	}
	return fallback
}

// stringSliceOr is stringOr for repeated flags.
func stringSliceOr(cmd *cobra.Command, flag string, fallback []string) []string {
	if cmd.Flags().Changed(flag) {
		value, _ := cmd.Flags().GetStringSlice(flag)
		return value
	}
	return fallback
}
