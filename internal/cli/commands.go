package cli

import (
	"fmt"

	"github.com/arthur-debert/residue/internal/version"
	"github.com/arthur-debert/residue/pkg/config"
	"github.com/arthur-debert/residue/pkg/discovery"
	"github.com/arthur-debert/residue/pkg/entries"
	"github.com/arthur-debert/residue/pkg/junk"
	"github.com/arthur-debert/residue/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(HostEnvironment())
}

func newRootCmd(env Environment) *cobra.Command {
	a := &app{env: env}

	rootCmd := &cobra.Command{
		Use:   "residue",
		Short: "Find what uninstalled applications left behind",
		Long: `residue inspects the shortcut inventory of a Windows machine and reports
shortcuts that still point into applications which are being removed. It also
lists enabled optional OS features as uninstallable entries.

Nothing is ever deleted: every candidate comes with a confidence rating and
the decision is yours.`,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging based on verbosity
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/residue/config.toml)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newFeaturesCmd(a))
	rootCmd.AddCommand(newShortcutsCmd(a))
	rootCmd.AddCommand(newJunkCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "residue version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, "Built:  %s\n", version.Date)
			}
		},
	}
}

func newFeaturesCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "features",
		Short: "List enabled optional OS features",
		Long: `Features queries the OS for optional features and lists the enabled ones
together with the command that removes them. The query is abandoned if it
does not answer within query.timeout.`,
		Example: `  # List enabled features
  residue features

  # Give a slow machine more time
  RESIDUE_QUERY_TIMEOUT=2m residue features --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			factory, err := a.featureFactory()
			if err != nil {
				return err
			}

			list, err := factory.Entries()
			if err != nil {
				return fmt.Errorf("failed to list OS features: %w", err)
			}

			r := newRenderer(cmd.OutOrStdout())
			if asJSON {
				return r.json(list)
			}
			r.entries(list)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of text")
	return cmd
}

func newShortcutsCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "shortcuts",
		Short: "Show the resolved shortcut inventory",
		Long: `Shortcuts lists every shell link found in the start menus and on the
desktops, with the path it resolves to. Links into the OS directory and links
that cannot be resolved are left out.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, err := a.inventory()
			if err != nil {
				return err
			}

			inventory := builder.Build()

			r := newRenderer(cmd.OutOrStdout())
			if asJSON {
				return r.json(inventory)
			}
			r.shortcuts(inventory)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of text")
	return cmd
}

func newJunkCmd(a *app) *cobra.Command {
	var (
		installedPath string
		targets       []string
		asJSON        bool
		mode          string
		withFeatures  bool
	)

	cmd := &cobra.Command{
		Use:   "junk --installed FILE",
		Short: "Find shortcuts left behind by uninstalled applications",
		Long: `Junk correlates the shortcut inventory with a list of installed entries.
A shortcut whose target lies inside the install or uninstaller location of a
target entry is reported as a leftover. The rating drops when another
installed entry still uses the same location.

The installed entries file is YAML or JSON: a list of entries, or a mapping
with an "entries" key. Without --target every entry is treated as a target.`,
		Example: `  # Leftovers of one application
  residue junk --installed installed.yaml --target "Foo Editor"

  # Stricter matching, JSON output
  residue junk --installed installed.json --mode boundary --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			matchMode, err := a.cfg.MatchMode()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("mode") {
				if matchMode, err = junk.ParseMatchMode(mode); err != nil {
					return err
				}
			}

			builder, err := a.inventory()
			if err != nil {
				return err
			}

			opts := discovery.Options{
				Installed: entries.NewFileProvider(a.env.Fs, installedPath),
				Inventory: builder,
				Targets:   targets,
				Match:     junk.Options{Mode: matchMode},
			}
			if !cmd.Flags().Changed("features") {
				withFeatures = a.cfg.Features.Enabled
			}
			if withFeatures {
				if opts.Features, err = a.featureFactory(); err != nil {
					return err
				}
			}

			result, err := discovery.Run(opts)
			if err != nil {
				return err
			}
			if result.FeatureError != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: OS features were skipped: %v\n", result.FeatureError)
			}

			r := newRenderer(cmd.OutOrStdout())
			if asJSON {
				return r.json(struct {
					Pass string     `json:"pass"`
					Junk []junkView `json:"junk"`
				}{Pass: result.ID, Junk: junkViews(result.Junk)})
			}
			r.junk(result.Junk)
			return nil
		},
	}

	cmd.Flags().StringVar(&installedPath, "installed", "", "YAML or JSON file with the installed entries")
	cmd.Flags().StringArrayVar(&targets, "target", nil, "Display name of an uninstalled application (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of text")
	cmd.Flags().StringVar(&mode, "mode", "", "Match mode: substring or boundary (default from matching.mode)")
	cmd.Flags().BoolVar(&withFeatures, "features", false, "Include OS features in the installed set (default from features.enabled)")
	_ = cmd.MarkFlagRequired("installed")

	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Config prints the configuration after merging the embedded defaults, the
user file and RESIDUE_* environment variables. With --defaults it prints the
commented defaults file instead, a starting point for your own config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				fmt.Fprint(cmd.OutOrStdout(), config.DefaultsContent())
				return nil
			}

			out, err := config.Dump(a.cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, "Print the embedded defaults file")
	return cmd
}
