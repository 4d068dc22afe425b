package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-crudgen/internal/resource/loader"
	"github.com/goliatone/go-crudgen/pkg/boilerplate"
	"github.com/goliatone/go-crudgen/pkg/orchestrator"
	"github.com/goliatone/go-crudgen/pkg/resource"
)

type generateOptions struct {
	url        string
	artifacts  []string
	skipLocale bool
}

func bindGenerateFlags(cmd *cobra.Command, opts *generateOptions) {
	flags := cmd.Flags()
	flags.StringVar(&opts.url, "url", "", "fetch the descriptor document over HTTP(S) instead of --config")
	flags.StringSliceVar(&opts.artifacts, "artifact", nil, "generate only the named artifacts")
	flags.BoolVar(&opts.skipLocale, "skip-locales", false, "do not merge locale entries")
	flags.Bool("openapi", false, "also emit an OpenAPI document per resource")
	flags.Bool("strict", false, "exit non-zero when any artifact or locale step fails")
	flags.Bool("dry-run", false, "print generated content instead of writing files")
}

func newGenerateCmd(a *app) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate [descriptor]",
		Short: "Generate CRUD artifacts and locale entries",
		Long: `Generate reads the descriptor document (the positional argument, --url or
--config) and writes one set of artifacts per resource under --root. Locale
files under <root>/locales are created or updated in place.

Failures of individual steps are reported and the remaining steps still run.
Use --strict to turn any failed step into a non-zero exit.

Example:
  crudgen generate resources.yaml --root server --locale en,it,de`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, opts, args)
		},
	}
	bindGenerateFlags(cmd, opts)
	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, opts *generateOptions, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("expected at most one descriptor, got %d", len(args))
	}

	src, err := a.descriptorSource(opts.url, args)
	if err != nil {
		return err
	}

	gen := orchestrator.New(a.orchestratorOptions()...)
	result, err := gen.Generate(cmd.Context(), orchestrator.Request{
		Source:      src,
		Artifacts:   opts.artifacts,
		SkipLocales: opts.skipLocale,
	})
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), result)
	if result.Failed() {
		if a.cfg.Strict {
			return fmt.Errorf("generation failed: %w", result.Err())
		}
		a.log.WarnContext(cmd.Context(), "generation finished with failures", "run_id", result.RunID)
	}
	return nil
}

func (a *app) descriptorSource(url string, args []string) (resource.Source, error) {
	switch {
	case strings.TrimSpace(url) != "":
		return resource.SourceFromURL(strings.TrimSpace(url))
	case len(args) == 1:
		return resource.SourceFromFile(args[0]), nil
	default:
		return resource.SourceFromFile(a.cfg.Descriptor), nil
	}
}

func (a *app) orchestratorOptions() []orchestrator.Option {
	return []orchestrator.Option{
		orchestrator.WithLoader(loader.New(resource.NewLoaderOptions(
			resource.WithHTTPFallback(a.cfg.HTTPTimeout),
		))),
		orchestrator.WithBoilerplateOptions(a.boilerplateOptions()...),
		orchestrator.WithLogger(a.log),
		orchestrator.WithRoot(a.cfg.Root),
		orchestrator.WithLocales(a.cfg.Locales...),
		orchestrator.WithDryRun(a.cfg.DryRun),
		orchestrator.WithOpenAPI(a.cfg.OpenAPI),
	}
}

func (a *app) boilerplateOptions() []boilerplate.Option {
	var opts []boilerplate.Option
	if dir := strings.TrimSpace(a.cfg.Boilerplates); dir != "" {
		opts = append(opts, boilerplate.WithDir(dir))
	}
	if variant := strings.TrimSpace(a.cfg.Variant); variant != "" {
		opts = append(opts, boilerplate.WithVariant(variant))
	}
	return opts
}

func printResult(w io.Writer, result *orchestrator.Result) {
	for _, step := range result.Steps {
		label := step.Name
		if step.Kind == orchestrator.StepLocale {
			label = "locale " + step.Name
		}
		switch {
		case step.Err != nil:
			fmt.Fprintf(w, "FAIL  %s %s: %v\n", step.Resource, label, step.Err)
		case result.DryRun:
			fmt.Fprintf(w, "==> %s (%s %s)\n", step.Path, step.Resource, label)
			_, _ = w.Write(step.Content)
			if len(step.Content) > 0 && step.Content[len(step.Content)-1] != '\n' {
				fmt.Fprintln(w)
			}
		default:
			fmt.Fprintf(w, "ok    %s\n", step.Path)
		}
	}
}
