package cli

import (
	"github.com/spf13/cobra"

	"github.com/commonsapp/commons/internal/model"
)

func newStatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "states",
		Short: "List accepted US state names",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)
			out.Print(StatesResult{States: model.USStates})
			return nil
		},
	}
}
