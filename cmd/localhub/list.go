package main

import (
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var detailed bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List repositories in the hub",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.hub()
			if err != nil {
				return err
			}

			repos, err := h.List(detailed)
			if err != nil {
				return err
			}

			return a.emit(map[string]interface{}{
				"hub":          h.Root(),
				"repositories": repos,
			}, func() {
				if len(repos) == 0 {
					a.out.Warning("No repositories in hub")
					a.out.Info("Use 'localhub create <name>' to create a new repository")
					return
				}

				a.out.Header("Repositories in Hub")
				a.out.Separator()
				if detailed {
					a.out.RepoTable(repos)
					a.out.Infof("\nTotal: %d repositories", len(repos))
					return
				}
				a.printNames(repos, "Total")
			})
		},
	}

	cmd.Flags().BoolVarP(&detailed, "detailed", "d", false, "Show size, commit count and modification time")

	return cmd
}
