package main

import (
	"github.com/spf13/cobra"

	"github.com/lcgerke/localhub/internal/constants"
)

func newAddPushURLCmd(a *app) *cobra.Command {
	var (
		remoteFlag string
		path       string
	)

	cmd := &cobra.Command{
		Use:   "add-push-url <name>",
		Short: "Add a hub repository as an extra push URL of an existing remote",
		Long: `Adds the hub repository as a push URL of an existing remote so every push
to that remote also updates the local backup. If the remote has no push URLs
yet, its fetch URL is recorded first so pushes keep reaching it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			remote := remoteName(cmd, remoteFlag, a.cfg.PushRemote)

			member, err := a.memberPath(name)
			if err != nil {
				return err
			}

			mgr, err := a.remotes(path)
			if err != nil {
				return err
			}
			if err := mgr.AddPushURL(remote, member); err != nil {
				return err
			}

			return a.emit(map[string]interface{}{
				"status":   "success",
				"remote":   remote,
				"push_url": member,
			}, func() {
				a.out.Successf("Added local backup push URL for remote '%s'", remote)
				a.out.Infof("Now every 'git push %s' will also push to the local backup", remote)
			})
		},
	}

	cmd.Flags().StringVarP(&remoteFlag, "remote-name", "r", constants.DefaultPushRemote, "Remote to extend")
	cmd.Flags().StringVarP(&path, "path", "p", "", "Working repository (default: current directory)")

	return cmd
}
