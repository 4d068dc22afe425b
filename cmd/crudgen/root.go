package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-crudgen/internal/config"
	"github.com/goliatone/go-crudgen/internal/logger"
	"github.com/goliatone/go-crudgen/pkg/prompt"
)

// app carries state shared by every command: the resolved configuration,
// the logger and the prompt driver used by init.
type app struct {
	envFiles []string
	cfg      config.Config
	log      *logger.Logger
	driver   prompt.PromptDriver
}

func newRootCmd(driver prompt.PromptDriver) *cobra.Command {
	a := &app{driver: driver}
	gen := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "crudgen",
		Short: "Scaffold CRUD modules from resource descriptors",
		Long: `crudgen turns resource descriptors into an Express/Mongoose CRUD module:
model, route, validation middleware, controller and transformer files, plus
locale entries for every configured language.

Running crudgen without a subcommand is the same as "crudgen generate".
Settings come from CRUDGEN_* environment variables (optionally through a .env
file); flags take precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, gen, args)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringSliceVar(&a.envFiles, "env-file", nil, "dotenv files to load (default .env)")
	flags.String("config", config.DefaultDescriptor, "descriptor document (JSON or YAML)")
	flags.String("root", config.DefaultRoot, "directory artifacts are written under")
	flags.StringSlice("locale", config.DefaultLocales, "locale codes to merge entries into")
	flags.String("boilerplates", "", "directory overriding the bundled boilerplates")
	flags.String("variant", "", "boilerplate variant declared in the manifest")
	flags.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	flags.String("log-format", config.DefaultLogFormat, "log format (text, json)")

	bindGenerateFlags(cmd, gen)

	cmd.AddCommand(
		newGenerateCmd(a),
		newInitCmd(a),
		newFragmentsCmd(a),
		newBoilerplatesCmd(a),
	)
	return cmd
}

// setup resolves configuration and applies any flag set on the command line.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFiles...)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("config") {
		cfg.Descriptor, _ = flags.GetString("config")
	}
	if flags.Changed("root") {
		cfg.Root, _ = flags.GetString("root")
	}
	if flags.Changed("locale") {
		locales, _ := flags.GetStringSlice("locale")
		cfg.Locales = config.SplitList(strings.Join(locales, ","))
	}
	if flags.Changed("boilerplates") {
		cfg.Boilerplates, _ = flags.GetString("boilerplates")
	}
	if flags.Changed("variant") {
		cfg.Variant, _ = flags.GetString("variant")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Lookup("openapi") != nil && flags.Changed("openapi") {
		cfg.OpenAPI, _ = flags.GetBool("openapi")
	}
	if flags.Lookup("strict") != nil && flags.Changed("strict") {
		cfg.Strict, _ = flags.GetBool("strict")
	}
	if flags.Lookup("dry-run") != nil && flags.Changed("dry-run") {
		cfg.DryRun, _ = flags.GetBool("dry-run")
	}

	a.cfg = cfg
	a.log = logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	}, logger.WithOutput(cmd.ErrOrStderr()))
	return nil
}
