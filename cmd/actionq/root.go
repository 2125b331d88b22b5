package actionq

import (
	"fmt"

	"github.com/arthur-debert/actionq/internal/version"
	"github.com/arthur-debert/actionq/pkg/config"
	"github.com/arthur-debert/actionq/pkg/logging"
	"github.com/arthur-debert/actionq/pkg/render"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags and the configuration they resolve
type globalOptions struct {
	verbosity  int
	configFile string
	dryRun     bool

	cfg *config.Config
}

// renderOptions merges a --format flag value over the configuration
func (g *globalOptions) renderOptions(format string) render.Options {
	if format == "" {
		format = g.cfg.Output.Format
	}
	return render.Options{
		Format:  format,
		Indent:  g.cfg.Output.Indent,
		Style:   g.cfg.Render.Style,
		Width:   g.cfg.Render.Width,
		NoColor: g.cfg.Render.NoColor,
	}
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "actionq",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Info(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.LoadOptions{ConfigFile: opts.configFile})
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}
			opts.cfg = cfg

			logging.SetupLoggerWithOptions(logging.Options{
				Verbosity: opts.verbosity,
				LogFile:   cfg.Logging.File,
				Console:   cmd.ErrOrStderr(),
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newBuildCmd(opts))
	rootCmd.AddCommand(newInspectCmd(opts))
	rootCmd.AddCommand(newValidateCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}
