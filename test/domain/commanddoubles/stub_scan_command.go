//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/condaops/envsync/internal/domain/commands"
	"github.com/condaops/envsync/internal/domain/entities"
)

// StubScanCommand is a stub implementation of commands.Scan.
type StubScanCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.ScanOptions
}

var _ commands.Scan = (*StubScanCommand)(nil)

func (s *StubScanCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.ScanOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}
