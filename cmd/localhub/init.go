package main

import (
	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the hub directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.hub()
			if err != nil {
				return err
			}
			if err := h.Init(); err != nil {
				return err
			}

			return a.emit(map[string]interface{}{
				"status": "success",
				"hub":    h.Root(),
			}, func() {
				a.out.Successf("Local Git Hub initialized at: %s", h.Root())
			})
		},
	}
}
