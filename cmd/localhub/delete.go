package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lcgerke/localhub/internal/hub"
	"github.com/lcgerke/localhub/internal/ui"
)

func newDeleteCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a repository from the hub",
		Long: `Deletes <name>.git from the hub after showing its size and commit count
and asking for confirmation. --force skips the question.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			h, err := a.hub()
			if err != nil {
				return err
			}

			prompter := ui.NewPrompter(a.stdin, a.stderr)
			confirm := func(summary hub.RepoSummary) (bool, error) {
				if !a.out.IsJSON() {
					a.out.Warningf("You are about to delete repository '%s'", name)
					a.printSummary(summary, false)
				}
				return prompter.Confirm("Are you sure you want to delete this repository?")
			}

			deleted, err := h.Delete(name, force, confirm)
			if err != nil {
				return err
			}

			return a.emit(map[string]interface{}{
				"name":    name,
				"deleted": deleted,
			}, func() {
				if !deleted {
					a.out.Info("Deletion cancelled")
					return
				}
				a.out.Success(fmt.Sprintf("Repository '%s' deleted", name))
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}
