package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/condaops/envsync/internal/domain/entities"
	domainRepos "github.com/condaops/envsync/internal/domain/repositories"
)

// Scan is the interface for the scan command (import discovery only).
type Scan interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ScanOptions) error
}

// ScanOptions holds runtime options for the scan-only mode.
type ScanOptions struct {
	ScanPaths     []string
	LocalPackages []string
	Verbose       bool
}

// ScanCommand runs only the import scanner and name mapper, printing the
// discovered external imports with their mapped distribution names. Useful
// for triaging the name-map table without touching any environment.
type ScanCommand struct {
	scanner domainRepos.ScannerRepository
	nameMap entities.NameMap
}

// NewScanCommand creates a new ScanCommand.
func NewScanCommand(
	scanner domainRepos.ScannerRepository,
	nameMap entities.NameMap,
) *ScanCommand {
	return &ScanCommand{
		scanner: scanner,
		nameMap: nameMap,
	}
}

// Execute scans the given paths and prints each discovered import.
func (it *ScanCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts ScanOptions,
) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	nameMap := it.nameMap.WithExtras(settings.PackageMap)

	exclude := append(append([]string{}, opts.LocalPackages...), settings.StdlibExtras...)
	imports, err := it.scanner.Scan(opts.ScanPaths, exclude)
	if err != nil {
		return fmt.Errorf("import scan failed: %w", err)
	}

	if len(imports) == 0 {
		fmt.Println("No external imports found.")
		return nil
	}

	nameW := len("Import")
	for _, name := range imports {
		if len(name) > nameW {
			nameW = len(name)
		}
	}

	fmt.Printf("%-*s  %s\n", nameW, "Import", "Distribution")
	for _, name := range imports {
		fmt.Printf("%-*s  %s\n", nameW, name, entities.NormalizeName(nameMap.Resolve(name)))
	}
	fmt.Printf("\nTotal: %d external imports\n", len(imports))

	return nil
}
