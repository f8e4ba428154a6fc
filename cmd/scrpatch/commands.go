// Package scrpatch wires the scrpatch CLI. The binary lives in ./main.
package scrpatch

import (
	"context"
	"fmt"
	"runtime"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/scrpatch/internal/version"
	"github.com/arthur-debert/scrpatch/pkg/build"
	"github.com/arthur-debert/scrpatch/pkg/cobrax/topics"
	"github.com/arthur-debert/scrpatch/pkg/commands/generate"
	"github.com/arthur-debert/scrpatch/pkg/commands/initialize"
	"github.com/arthur-debert/scrpatch/pkg/commands/listing"
	"github.com/arthur-debert/scrpatch/pkg/commands/preview"
	"github.com/arthur-debert/scrpatch/pkg/config"
	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/logging"
	"github.com/arthur-debert/scrpatch/pkg/ui"
	"github.com/arthur-debert/scrpatch/pkg/ui/display"
)

// globals are the persistent flags shared by every command
type globals struct {
	verbosity  int
	configFile string
	noConfig   bool
	sets       []string
	format     string
}

func (g *globals) configOptions() config.Options {
	return config.Options{File: g.configFile, Sets: g.sets, NoFile: g.noConfig}
}

func (g *globals) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	f, err := ui.ParseFormat(g.format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(f, cmd.OutOrStdout())
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	g := &globals{}

	rootCmd := &cobra.Command{
		Use:     "scrpatch",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(g.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, "no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVarP(&g.configFile, "config", "c", "", MsgFlagConfig)
	pf.BoolVar(&g.noConfig, "no-config", false, MsgFlagNoConfig)
	pf.StringArrayVar(&g.sets, "set", nil, MsgFlagSet)
	pf.StringVar(&g.format, "format", "auto", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newBuildCmd(g))
	rootCmd.AddCommand(newPatchCmd(g))
	rootCmd.AddCommand(newTemplatesCmd(g))
	rootCmd.AddCommand(newInitCmd(g))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	opts := topics.Options{
		Extensions: []string{".md", ".txt"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if err := topics.InitializeWithOptions(rootCmd, TopicsFS(), opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.AddCommand(newTopicsCmd())

	return rootCmd
}

// targetCompletion completes target names
func targetCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return build.Targets().Names(), cobra.ShellCompDirectiveNoFileComp
}

func newBuildCmd(g *globals) *cobra.Command {
	opts := generate.Options{}
	var noPrune bool

	cmd := &cobra.Command{
		Use:     "build",
		Short:   MsgBuildShort,
		Long:    MsgBuildLong,
		Example: MsgBuildExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Config = g.configOptions()
			opts.Prune = !noPrune

			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}

			res, err := generate.Build(commandContext(cmd), opts)
			if err != nil {
				return err
			}
			if err := r.RenderBuild(res); err != nil {
				return err
			}
			if res.DryRun {
				log.Info().Msg(MsgDryRunNotice)
			}
			return buildError(res)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.TemplateDir, "templates", "t", "templates", MsgFlagTemplates)
	f.StringVarP(&opts.OutputDir, "out", "o", ".", MsgFlagOut)
	f.IntVarP(&opts.Jobs, "jobs", "j", runtime.NumCPU(), MsgFlagJobs)
	f.BoolVarP(&opts.DryRun, "dry-run", "n", false, MsgFlagDryRun)
	f.BoolVar(&noPrune, "no-prune", false, MsgFlagNoPrune)
	return cmd
}

// buildError turns failed files into the command's error, so the process
// exits non-zero after the full result was rendered.
func buildError(res *display.BuildResult) error {
	failed := res.Count(display.StatusFailed)
	if failed == 0 {
		return nil
	}
	planned := len(res.Files) - res.Count(display.StatusRemoved)
	return errors.Newf(errors.ErrBuildFailed, MsgErrBuildFailed, failed, planned).
		WithDetail("failed", failed)
}

func newPatchCmd(g *globals) *cobra.Command {
	opts := preview.Options{}

	cmd := &cobra.Command{
		Use:               "patch TARGET",
		Short:             MsgPatchShort,
		Long:              MsgPatchLong,
		Example:           MsgPatchExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: targetCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Target = args[0]
			opts.Config = g.configOptions()

			out, err := preview.Preview(commandContext(cmd), opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVarP(&opts.TemplateDir, "templates", "t", "templates", MsgFlagTemplates)
	return cmd
}

func newTemplatesCmd(g *globals) *cobra.Command {
	opts := listing.Options{}

	cmd := &cobra.Command{
		Use:     "templates",
		Short:   MsgTemplatesShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Config = g.configOptions()

			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			list, err := listing.ListTargets(opts)
			if err != nil {
				return err
			}
			return r.RenderTargets(list)
		},
	}
	cmd.Flags().StringVarP(&opts.TemplateDir, "templates", "t", "templates", MsgFlagTemplates)
	return cmd
}

func newInitCmd(g *globals) *cobra.Command {
	opts := initialize.Options{}

	cmd := &cobra.Command{
		Use:     "init [PATH]",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Config = g.configOptions()
			opts.Path = ""
			if len(args) == 1 {
				opts.Path = args[0]
			}

			res, err := initialize.Init(opts)
			if err != nil {
				return err
			}
			if res.Written == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), res.Content)
				return err
			}
			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderMessage(fmt.Sprintf(MsgSettingsSaved, res.Written))
		},
	}
	cmd.Flags().BoolVar(&opts.Commented, "commented", false, MsgFlagCommented)
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, MsgFlagForce)
	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			helpCmd, _, err := cmd.Root().Find([]string{"help"})
			if err != nil {
				return err
			}
			helpCmd.SetOut(cmd.OutOrStdout())
			helpCmd.Run(helpCmd, []string{"topics"})
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprint(cmd.OutOrStdout(), version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
