package main

import (
	"runtime"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X main.version=..."
var version = "dev"

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the localhub version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.emit(map[string]string{
				"version": version,
				"go":      runtime.Version(),
			}, func() {
				a.out.Infof("localhub %s (%s)", version, runtime.Version())
			})
		},
	}
}
