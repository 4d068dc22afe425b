package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-crudgen/pkg/boilerplate"
	"github.com/goliatone/go-crudgen/pkg/orchestrator"
)

func newBoilerplatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boilerplates",
		Short: "Inspect the boilerplate set in use",
		Long: `Boilerplates prints the manifest of the active boilerplate set (the bundled
set layered under --boilerplates), its variants, the templates it resolves
and the artifacts generate will produce.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := boilerplate.NewStore(a.boilerplateOptions()...)
			if err != nil {
				return err
			}
			manifest := store.Manifest()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "manifest: %s %s\n", manifest.Name, manifest.Version)
			if variant := store.Variant(); variant != "" {
				fmt.Fprintf(out, "variant:  %s\n", variant)
			}
			if variants := boilerplate.VariantNames(manifest); len(variants) > 0 {
				fmt.Fprintf(out, "variants: %s\n", strings.Join(variants, ", "))
			}
			fmt.Fprintf(out, "templates: %s\n", strings.Join(store.Names(), ", "))

			gen := orchestrator.New(
				orchestrator.WithStore(store),
				orchestrator.WithOpenAPI(a.cfg.OpenAPI),
				orchestrator.WithRoot(a.cfg.Root),
			)
			fmt.Fprintf(out, "artifacts: %s\n", strings.Join(gen.Artifacts(), ", "))
			return nil
		},
	}
	cmd.Flags().Bool("openapi", false, "include the OpenAPI artifact in the listing")
	cmd.AddCommand(newBoilerplatesExportCmd())
	return cmd
}

func newBoilerplatesExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <dir>",
		Short: "Copy the bundled boilerplates into dir for customisation",
		Long: `Export writes the bundled manifest and templates into dir. Point
--boilerplates at the directory afterwards; files left out of it fall back to
the bundled copies. Existing files are never overwritten.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.CopyFS(args[0], boilerplate.EmbeddedFS()); err != nil {
				return fmt.Errorf("export boilerplates: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported boilerplates to %s\n", args[0])
			return nil
		},
	}
}
