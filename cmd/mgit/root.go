package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/odvcencio/mgit/internal/logging"
	"github.com/odvcencio/mgit/pkg/repo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const version = "0.1.0-dev"

// app carries the settings resolved once per invocation.
type app struct {
	configPath string
	debug      int
	colorMode  string

	cfg *repo.Config
	log *zap.Logger
}

// openRepo locates the repository enclosing the working directory.
func (a *app) openRepo() (*repo.Repo, error) {
	return repo.Open(".", a.cfg, a.log)
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "mgit",
		Short:         "Content-addressed object plumbing",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "read settings from a TOML config file")
	flags.CountVarP(&a.debug, "debug", "d", "increase log verbosity (repeatable)")
	flags.StringVar(&a.colorMode, "color", "auto", "colorize output: auto, always or never")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newCatFileCmd(a))
	root.AddCommand(newHashObjectCmd(a))
	root.AddCommand(newLsTreeCmd(a))
	root.AddCommand(newWriteTreeCmd(a))
	root.AddCommand(newRootDirCmd(a))
	root.AddCommand(newCheckIgnoreCmd(a))
	return root
}

func (a *app) setup() error {
	cfg, err := repo.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logging.New(logging.Raise(cfg.LogLevel, a.debug))
	if err != nil {
		return err
	}
	a.log = log

	switch a.colorMode {
	case "auto":
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color %q (want auto, always or never)", a.colorMode)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "mgit", version)
		},
	}
}
