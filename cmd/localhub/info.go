package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <name>",
		Short: "Show repository details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.hub()
			if err != nil {
				return err
			}

			info, err := h.Info(args[0])
			if err != nil {
				return err
			}

			return a.emit(info, func() {
				a.out.Header(fmt.Sprintf("Repository: %s", info.Name))
				a.out.Separator()
				a.printSummary(info, true)
			})
		},
	}
}
