package main

import (
	"github.com/spf13/cobra"
)

func newRemoveRemoteCmd(a *app) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "remove-remote <remote-name>",
		Short: "Remove a remote from a working repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			remote := args[0]

			mgr, err := a.remotes(path)
			if err != nil {
				return err
			}
			if err := mgr.Remove(remote); err != nil {
				return err
			}

			return a.emit(map[string]interface{}{
				"status": "success",
				"remote": remote,
			}, func() {
				a.out.Successf("Remote '%s' removed", remote)
			})
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "Working repository (default: current directory)")

	return cmd
}
