package entities

import "github.com/spf13/cobra"

// ControllerBind carries the Cobra command metadata a controller exposes.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is implemented by every CLI-facing controller. GetBind supplies
// the subcommand wiring; Execute runs the controller's command.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string) error
}
