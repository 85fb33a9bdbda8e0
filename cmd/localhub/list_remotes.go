package main

import (
	"github.com/spf13/cobra"
)

func newListRemotesCmd(a *app) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "list-remotes",
		Short: "List the remotes of a working repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := a.remotes(path)
			if err != nil {
				return err
			}

			remotes, err := mgr.List()
			if err != nil {
				return err
			}

			return a.emit(map[string]interface{}{
				"path":    mgr.Path(),
				"remotes": remotes,
			}, func() {
				if len(remotes) == 0 {
					a.out.Warning("No remotes in current repository")
					return
				}

				a.out.Header("Remotes in Current Repository")
				a.out.Separator()
				for _, r := range remotes {
					a.out.Infof("  %s -> %s", r.Name, r.FetchURL)
					for _, u := range r.PushURLs {
						a.out.Infof("      push: %s", u)
					}
				}
			})
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "Working repository (default: current directory)")

	return cmd
}
