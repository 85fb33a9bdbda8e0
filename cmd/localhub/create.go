package main

import (
	"github.com/spf13/cobra"
)

func newCreateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new bare repository in the hub",
		Long: `Creates <name>.git in the hub, initializing the hub directory first if
needed. A trailing .git in <name> is not doubled.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			h, err := a.hub()
			if err != nil {
				return err
			}
			if err := h.Init(); err != nil {
				return err
			}

			repo, err := h.Create(name)
			if err != nil {
				return err
			}

			return a.emit(repo, func() {
				a.out.Successf("Repository '%s' created at: %s", name, repo.Path)
				a.out.Infof("Use 'localhub add-remote %s' to add it to the current project", name)
			})
		},
	}
}
