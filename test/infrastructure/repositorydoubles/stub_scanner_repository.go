//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/condaops/envsync/internal/domain/repositories"
)

// StubScannerRepository implements repositories.ScannerRepository with a
// fixed import list, recording the paths and exclusions it was given.
type StubScannerRepository struct {
	Imports []string
	ScanErr error

	// spy: calls received
	ScanCallCount int
	LastPaths     []string
	LastExclude   []string
}

var _ repositories.ScannerRepository = (*StubScannerRepository)(nil)

func (s *StubScannerRepository) Scan(paths, exclude []string) ([]string, error) {
	s.ScanCallCount++
	s.LastPaths = paths
	s.LastExclude = exclude
	return s.Imports, s.ScanErr
}
