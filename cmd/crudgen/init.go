package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-crudgen/pkg/prompt"
	"github.com/goliatone/go-crudgen/pkg/resource"
)

type descriptorDocument struct {
	Resources []resource.Descriptor `json:"resources" yaml:"resources"`
}

func newInitCmd(a *app) *cobra.Command {
	var (
		output string
		force  bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Describe a resource interactively and save it",
		Long: `Init asks for a resource name and its fields, then saves the descriptor.
When the output file already exists the new resource is appended to it,
unless --force is given. Files ending in .yaml or .yml are written as YAML,
everything else as JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output == "" {
				output = a.cfg.Descriptor
			}
			driver := a.driver
			if driver == nil {
				driver = prompt.NewSurveyDriver()
			}

			d, err := prompt.CollectDescriptor(cmd.Context(), driver)
			if err != nil {
				return err
			}

			descriptors := []resource.Descriptor{d}
			if !force {
				existing, err := readExisting(output)
				if err != nil {
					return err
				}
				descriptors = append(existing, d)
			}
			if err := resource.ValidateAll(descriptors); err != nil {
				return err
			}

			data, err := encodeDescriptors(output, descriptors)
			if err != nil {
				return err
			}
			if dir := filepath.Dir(output); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return err
				}
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			a.log.InfoContext(cmd.Context(), "descriptor saved", "path", output, "resource", d.ResourceName)
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s to %s\n", d.ResourceName, output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "descriptor file to write (default --config)")
	cmd.Flags().BoolVar(&force, "force", false, "replace the output file instead of appending")
	return cmd
}

func readExisting(path string) ([]resource.Descriptor, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(raw)) == "" {
		return nil, nil
	}
	doc, err := resource.NewDocument(resource.SourceFromFile(path), raw)
	if err != nil {
		return nil, err
	}
	return resource.Parse(doc)
}

func encodeDescriptors(path string, descriptors []resource.Descriptor) ([]byte, error) {
	var payload any = descriptorDocument{Resources: descriptors}
	if len(descriptors) == 1 {
		payload = descriptors[0]
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Marshal(payload)
	default:
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}
