// Package cli assembles the linkfarm command tree. Command logic lives in
// pkg/commands; this package only parses flags, maps them onto
// configuration overrides and renders results.
package cli

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/linkfarm/internal/version"
	"github.com/arthur-debert/linkfarm/pkg/builder"
	"github.com/arthur-debert/linkfarm/pkg/cobrax/topics"
	"github.com/arthur-debert/linkfarm/pkg/commands/build"
	"github.com/arthur-debert/linkfarm/pkg/commands/genconfig"
	"github.com/arthur-debert/linkfarm/pkg/commands/watch"
	"github.com/arthur-debert/linkfarm/pkg/logging"
	"github.com/arthur-debert/linkfarm/pkg/output"
)

//go:embed topics
var topicFiles embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity  int
		configFile string
	)

	rootCmd := &cobra.Command{
		Use:     "linkfarm",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand given: show help but exit nonzero.
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newBuildCmd(&configFile))
	rootCmd.AddCommand(newWatchCmd(&configFile))
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Initialize topic-based help system over the embedded topic files
	if topicsFS, err := fs.Sub(topicFiles, "topics"); err == nil {
		_ = topics.InitializeWithOptions(rootCmd, topicsFS, topics.Options{
			Extensions: []string{".txt", ".md"},
			// Always use Glamour renderer for markdown files
			Renderer: topics.NewGlamourRenderer(),
		})
	}

	return rootCmd
}

// configFlags are the flag-level configuration overrides shared by build
// and watch.
type configFlags struct {
	storageRoots []string
	linkRoot     string
	linkPaths    []string
	hardlink     bool
	onExisting   string
	source       string
}

func (f *configFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.storageRoots, "storage-root", nil, MsgFlagStorageRoot)
	cmd.Flags().StringVar(&f.linkRoot, "link-root", "", MsgFlagLinkRoot)
	cmd.Flags().StringArrayVar(&f.linkPaths, "link-path", nil, MsgFlagLinkPath)
	cmd.Flags().BoolVar(&f.hardlink, "hardlink", false, MsgFlagHardlink)
	cmd.Flags().StringVar(&f.onExisting, "on-existing", "", MsgFlagOnExisting)
	cmd.Flags().StringVar(&f.source, "source", "", MsgFlagSource)
}

// overrides maps the flags the user actually set onto configuration keys,
// so unset flags never mask file or environment values.
func (f *configFlags) overrides(cmd *cobra.Command) map[string]interface{} {
	overrides := make(map[string]interface{})
	flags := cmd.Flags()

	if flags.Changed("storage-root") {
		// A flag-set root displaces both config forms, or the two would
		// trip the mutual exclusion check.
		if len(f.storageRoots) == 1 {
			overrides["storage_root"] = f.storageRoots[0]
			overrides["storage_roots"] = []string{}
		} else {
			overrides["storage_root"] = ""
			overrides["storage_roots"] = f.storageRoots
		}
	}
	if flags.Changed("link-root") {
		overrides["link_root"] = f.linkRoot
	}
	if flags.Changed("link-path") {
		overrides["link_paths"] = f.linkPaths
	}
	if flags.Changed("hardlink") {
		overrides["hardlink"] = f.hardlink
	}
	if flags.Changed("on-existing") {
		overrides["on_existing"] = f.onExisting
	}
	if flags.Changed("source") {
		overrides["metadata.source"] = f.source
	}
	return overrides
}

func newBuildCmd(configFile *string) *cobra.Command {
	var (
		flags  configFlags
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:     "build",
		Short:   MsgBuildShort,
		Long:    MsgBuildLong,
		Example: MsgBuildExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := build.Build(build.Options{
				ConfigFile: *configFile,
				Overrides:  flags.overrides(cmd),
				DryRun:     dryRun,
			})
			if err != nil {
				return err
			}

			printBuildResult(cmd.OutOrStdout(), output.DetectFormat(os.Stdout), result)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	return cmd
}

func newWatchCmd(configFile *string) *cobra.Command {
	var (
		flags    configFlags
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:     "watch",
		Short:   MsgWatchShort,
		Long:    MsgWatchLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			format := output.DetectFormat(os.Stdout)

			return watch.Watch(ctx, watch.Options{
				ConfigFile: *configFile,
				Overrides:  flags.overrides(cmd),
				Debounce:   debounce,
				OnBuild: func(r *builder.Result) {
					printWatchBuild(out, format, r)
				},
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, MsgFlagDebounce)
	return cmd
}

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "gen-config [path]",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}

			result, err := genconfig.GenConfig(genconfig.Options{
				Write: write,
				Path:  path,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !write {
				fmt.Fprintln(out, result.ConfigContent)
				return nil
			}
			if result.FileWritten == "" {
				fmt.Fprintln(out, "Config file already exists, leaving it alone.")
				return nil
			}
			fmt.Fprintf(out, "Written %s\n", result.FileWritten)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Long:    MsgVersionLong,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "linkfarm version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, "Built:  %s\n", version.Date)
			}
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion script",
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true)
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
