package commands

import (
	"context"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/condaops/envsync/internal/artifacts"
	"github.com/condaops/envsync/internal/domain/entities"
	domainRepos "github.com/condaops/envsync/internal/domain/repositories"
	"github.com/condaops/envsync/internal/report"
)

// Sync is the interface for the sync command (full reconciliation run).
type Sync interface {
	Execute(ctx context.Context, settings *entities.Settings, opts entities.SyncOptions) error
}

// SyncCommand runs the full reconciliation flow: scan the source tree for
// imports, query both environments, compare versions, render the report,
// and generate the remediation artifacts.
type SyncCommand struct {
	factory domainRepos.InspectorFactory
	scanner domainRepos.ScannerRepository
	nameMap entities.NameMap
}

// NewSyncCommand creates a new SyncCommand.
func NewSyncCommand(
	factory domainRepos.InspectorFactory,
	scanner domainRepos.ScannerRepository,
	nameMap entities.NameMap,
) *SyncCommand {
	return &SyncCommand{
		factory: factory,
		scanner: scanner,
		nameMap: nameMap,
	}
}

// Execute runs a single reconciliation. Both environments are validated
// before any scanning happens; a validation failure is a user-input error
// and aborts the run.
func (it *SyncCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts entities.SyncOptions,
) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	if err := entities.ValidatePackageManager(opts.PackageManager); err != nil {
		return err
	}

	nameMap := it.nameMap.WithExtras(settings.PackageMap)

	condaEnv := it.factory.Conda(opts.CondaEnv)
	venvEnv := it.factory.Venv(opts.VenvPath, opts.PackageManager)

	for _, env := range []domainRepos.EnvironmentRepository{condaEnv, venvEnv} {
		if err := env.Validate(ctx); err != nil {
			return fmt.Errorf("invalid %s: %w", env.Name(), err)
		}
	}

	logger.Infof("Scanning %d paths for imported packages...", len(opts.ScanPaths))

	exclude := append(append([]string{}, opts.LocalPackages...), settings.StdlibExtras...)
	imports, err := it.scanner.Scan(opts.ScanPaths, exclude)
	if err != nil {
		return fmt.Errorf("import scan failed: %w", err)
	}
	logger.Infof("Found %d external packages in code", len(imports))

	condaPackages, err := condaEnv.ListPackages(ctx)
	if err != nil {
		return err
	}
	logger.Infof("Found %d packages in %s", len(condaPackages), condaEnv.Name())

	venvPackages, err := venvEnv.ListPackages(ctx)
	if err != nil {
		return err
	}
	logger.Infof("Found %d packages in %s", len(venvPackages), venvEnv.Name())

	result := entities.Compare(imports, nameMap, condaPackages, venvPackages)
	report.Render(os.Stdout, result, len(condaPackages), len(venvPackages))

	if opts.NoGenerateFiles {
		logger.Debug("Skipping artifact generation (--no-generate-files)")
		return nil
	}

	return it.generateArtifacts(imports, nameMap, condaPackages, opts)
}

// generateArtifacts writes the pinned requirements file and the sync script.
func (it *SyncCommand) generateArtifacts(
	imports []string,
	nameMap entities.NameMap,
	condaPackages entities.PackageSet,
	opts entities.SyncOptions,
) error {
	required := nameMap.ResolveAll(imports)

	if err := artifacts.WriteRequirements(opts.OutputRequirements, required, condaPackages); err != nil {
		return err
	}

	params := artifacts.ScriptParams{
		VenvPath:         opts.VenvPath,
		PackageManager:   it.factory.ResolvePackageManager(opts.PackageManager),
		RequirementsPath: opts.OutputRequirements,
	}
	if err := artifacts.WriteSyncScript(opts.OutputSyncScript, params); err != nil {
		return err
	}

	logger.Info("Next steps:")
	logger.Infof("  1. Review the sync script: %s", opts.OutputSyncScript)
	logger.Infof("  2. Run it: bash %s", opts.OutputSyncScript)
	logger.Infof("  3. Or install directly: pip install -r %s", opts.OutputRequirements)
	return nil
}
