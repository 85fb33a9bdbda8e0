package main

import (
	"github.com/spf13/cobra"

	"github.com/lcgerke/localhub/internal/constants"
	"github.com/lcgerke/localhub/internal/hub"
)

// memberPath validates name and returns the path of the existing hub member
func (a *app) memberPath(name string) (string, error) {
	if err := hub.Validate(name); err != nil {
		return "", err
	}
	h, err := a.hub()
	if err != nil {
		return "", err
	}
	return h.Path(name)
}

// remoteName returns the --remote-name flag, or fallback when it was not set
func remoteName(cmd *cobra.Command, flag, fallback string) string {
	if cmd.Flags().Changed("remote-name") {
		return flag
	}
	return fallback
}

func newAddRemoteCmd(a *app) *cobra.Command {
	var (
		remoteFlag string
		path       string
	)

	cmd := &cobra.Command{
		Use:   "add-remote <name>",
		Short: "Add a hub repository as a remote of a working repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			remote := remoteName(cmd, remoteFlag, a.cfg.RemoteName)

			member, err := a.memberPath(name)
			if err != nil {
				return err
			}

			mgr, err := a.remotes(path)
			if err != nil {
				return err
			}
			if err := mgr.AddRemote(remote, member); err != nil {
				return err
			}

			return a.emit(map[string]interface{}{
				"status": "success",
				"remote": remote,
				"url":    member,
			}, func() {
				a.out.Successf("Added remote '%s' -> %s", remote, member)
				a.out.Infof("Now you can use 'git push %s <branch>' to push to the local backup", remote)
			})
		},
	}

	cmd.Flags().StringVarP(&remoteFlag, "remote-name", "r", constants.DefaultHubRemote, "Name of the remote to create")
	cmd.Flags().StringVarP(&path, "path", "p", "", "Working repository (default: current directory)")

	return cmd
}
