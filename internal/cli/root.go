package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
// main calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// globals is state shared by every subcommand, filled in PersistentPreRunE.
type globals struct {
	verbose    bool
	configPath string
	cfg        Config
}

// NewRootCommand builds the postman command tree.
func NewRootCommand() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:           "postman",
		Short:         "postman finds the cheapest closed walk that covers every edge of a graph",
		Long:          `postman solves the Chinese Postman (route inspection) problem on undirected weighted multigraphs loaded from JSON, TOML or YAML files.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g.configPath)
			if err != nil {
				return err
			}
			g.cfg = cfg

			level := charmlog.InfoLevel
			if g.verbose || cfg.Verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("postman %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&g.configPath, "config", "", "TOML file with solver defaults")

	root.AddCommand(newSolveCmd(g))
	root.AddCommand(newRenderCmd(g))
	root.AddCommand(newGenerateCmd())

	return root
}

// Execute runs the CLI under ctx; cancelling ctx aborts a running solve.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
