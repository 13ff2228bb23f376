package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/condaops/envsync/internal/domain/commands"
	"github.com/condaops/envsync/internal/domain/entities"
)

// ScanController handles the "scan" subcommand (import discovery only).
type ScanController struct {
	command commands.Scan
}

// NewScanController creates a new ScanController.
func NewScanController(command commands.Scan) *ScanController {
	return &ScanController{command: command}
}

// GetBind returns the Cobra command metadata for the scan controller.
func (it *ScanController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "scan",
		Short: "Scan the source tree for imported external packages",
		Long: `Walk the configured scan paths, parse every Python file, and print the
distinct external import names with their mapped distribution names.
No environment is queried and no files are generated.`,
	}
}

// Execute runs the scan-only mode.
func (it *ScanController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")

	return it.command.Execute(ctx, settings, commands.ScanOptions{
		ScanPaths:     stringSliceOr(cmd, "scan-paths", settings.ScanPaths),
		LocalPackages: stringSliceOr(cmd, "local-packages", settings.LocalPackages),
		Verbose:       verbose,
	})
}

// AddFlags adds the scan-specific flags to the given Cobra command.
func (it *ScanController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("scan-paths", nil, "Directories to scan for imports")
	cmd.Flags().StringSlice("local-packages", nil, "Project-local import names to exclude")
}
