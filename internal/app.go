package internal

import (
	"github.com/condaops/envsync/internal/domain/entities"
)

// AppInternal aggregates the CLI-facing controllers for subcommand wiring.
type AppInternal struct {
	controllers *[]entities.Controller
}

// NewAppInternal creates the application context from the aggregated controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: controllers}
}

// GetControllers returns every registered controller.
func (it *AppInternal) GetControllers() []entities.Controller {
	return *it.controllers
}
