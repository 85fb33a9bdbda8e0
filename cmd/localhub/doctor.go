package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lcgerke/localhub/internal/errors"
	"github.com/lcgerke/localhub/internal/hub"
)

func newDoctorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the hub and its repositories",
		Long: `Checks that the hub directory exists and that every member is a bare
repository that can be opened. Exits non-zero when any check fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.hub()
			if err != nil {
				return err
			}

			report, err := h.Doctor()
			if err != nil {
				return err
			}

			err = a.emit(report, func() {
				a.out.Header("Hub Diagnostic Report")
				a.out.Separator()
				a.out.Infof("Hub: %s\n", report.Root)

				for _, check := range report.Checks {
					line := fmt.Sprintf("%s: %s", check.Name, check.Message)
					switch check.Status {
					case hub.StatusOK:
						a.out.Success(line)
					case hub.StatusWarning:
						a.out.Warning(line)
					default:
						a.out.Failure(line)
					}
				}
				a.out.Infof("\n%d warning(s), %d error(s)", report.Warnings, report.Errors)
			})
			if err != nil {
				return err
			}

			if report.HasErrors() {
				return errors.WithHint(
					errors.New(errors.ErrorTypeHub, errors.CodeInvalidRepository,
						fmt.Sprintf("%d check(s) failed", report.Errors)),
					"Inspect or delete the repositories marked ✗.",
				)
			}
			return nil
		},
	}
}
