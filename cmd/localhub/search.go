package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <pattern>",
		Short: "Search repositories by name",
		Long:  `Lists repositories whose name, without .git, contains <pattern> ignoring case.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0]

			h, err := a.hub()
			if err != nil {
				return err
			}

			repos, err := h.Search(pattern)
			if err != nil {
				return err
			}

			return a.emit(map[string]interface{}{
				"pattern":      pattern,
				"repositories": repos,
			}, func() {
				a.out.Header(fmt.Sprintf("Search Results for '%s'", pattern))
				a.out.Separator()
				if len(repos) == 0 {
					a.out.Warning("No repositories found")
					return
				}
				a.printNames(repos, "Found")
			})
		},
	}
}
