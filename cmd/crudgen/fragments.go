package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-crudgen/internal/resource/loader"
	"github.com/goliatone/go-crudgen/pkg/fragments"
	"github.com/goliatone/go-crudgen/pkg/resource"
)

func newFragmentsCmd(a *app) *cobra.Command {
	var only string
	cmd := &cobra.Command{
		Use:   "fragments [descriptor]",
		Short: "Print the code fragments generated for each resource",
		Long: `Fragments prints the text substituted for every placeholder marker, and
the locale entry, without rendering any boilerplate. Use --resource to limit
the output to one resource.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.descriptorSource("", args)
			if err != nil {
				return err
			}
			doc, err := loader.New(resource.NewLoaderOptions()).Load(cmd.Context(), src)
			if err != nil {
				return err
			}
			descriptors, err := resource.Parse(doc)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printed := 0
			for _, d := range descriptors {
				if only != "" && !strings.EqualFold(only, d.ResourceName) {
					continue
				}
				printed++
				set := fragments.Build(d)
				fmt.Fprintf(out, "# %s\n", d.ResourceName)
				for _, slot := range fragments.AllSlots() {
					fmt.Fprintf(out, "\n%s\n%s\n", slot.Marker(), set[slot])
				}
				entry, err := fragments.LocaleEntryText(d)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\n/* Locale */\n%s\n\n", entry)
			}
			if only != "" && printed == 0 {
				return fmt.Errorf("resource %q not found in %s", only, src.Location())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&only, "resource", "", "only print fragments for this resource")
	return cmd
}
