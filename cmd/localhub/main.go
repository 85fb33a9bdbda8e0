package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lcgerke/localhub/internal/config"
	"github.com/lcgerke/localhub/internal/constants"
	"github.com/lcgerke/localhub/internal/hub"
	"github.com/lcgerke/localhub/internal/logging"
	"github.com/lcgerke/localhub/internal/paths"
	"github.com/lcgerke/localhub/internal/remote"
	"github.com/lcgerke/localhub/internal/ui"
)

// app carries the streams, global flags and per-invocation state shared by
// all subcommands.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// Global flags
	hubPath    string
	format     string
	noColor    bool
	verbose    bool
	configPath string

	cfg    *config.Config
	out    *ui.Output
	logger *log.Logger
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "localhub",
		Short: "Manage a local hub of bare Git repositories used as backups",
		Long: `localhub keeps bare Git repositories in a hub directory (default
~/.local-git-hub) and wires working repositories to them, either as a
separate remote or as an extra push URL of an existing remote.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVarP(&a.hubPath, "hub-path", "H", "", "Hub root directory (default: ~/"+constants.DefaultHubDir+")")
	rootCmd.PersistentFlags().StringVar(&a.format, "format", string(ui.FormatHuman), "Output format (human|json)")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: ~/"+constants.ConfigDir+"/"+constants.ConfigFile+")")

	rootCmd.AddCommand(
		newInitCmd(a),
		newCreateCmd(a),
		newListCmd(a),
		newSearchCmd(a),
		newInfoCmd(a),
		newDeleteCmd(a),
		newAddRemoteCmd(a),
		newAddPushURLCmd(a),
		newListRemotesCmd(a),
		newRemoveRemoteCmd(a),
		newDoctorCmd(a),
		newVersionCmd(a),
	)

	rootCmd.SetIn(a.stdin)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	return rootCmd
}

// setup resolves output, configuration and logging before any subcommand runs
func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.out = ui.NewOutput(a.stdout, a.stderr)
	format, err := ui.ParseFormat(a.format)
	if err != nil {
		return err
	}
	a.out.SetFormat(format)
	if a.noColor {
		a.out.SetColorEnabled(false)
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.hubPath != "" {
		cfg.HubPath = a.hubPath
	}
	a.cfg = cfg

	logger, err := logging.New(a.stderr, cfg.LogLevel, a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Debug("configuration loaded", "config", config.Path(a.configPath), "hub_path", cfg.HubPath)

	return nil
}

// hub opens the hub at the configured root
func (a *app) hub() (*hub.Hub, error) {
	root, err := paths.HubRoot(a.cfg.HubPath)
	if err != nil {
		return nil, err
	}
	return hub.New(root, a.logger), nil
}

// remotes opens the working repository at path. Without --path the
// repository enclosing the current directory is used.
func (a *app) remotes(path string) (*remote.Manager, error) {
	target, err := paths.Target(path)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return remote.Discover(target, a.logger)
	}
	return remote.Open(target, a.logger)
}

// run executes one invocation and returns the process exit code
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		out := a.out
		if out == nil {
			out = ui.NewOutput(stdout, stderr)
		}
		out.ReportError(err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
