package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-bindgen/pkg/report"
)

func newDescribeCommand(root *rootOptions) *cobra.Command {
	var (
		format    string
		templates string
	)
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Run one pass and print the published descriptors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, results, err := root.runPass(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			descriptors := results.All()
			out := cmd.OutOrStdout()

			switch strings.ToLower(strings.TrimSpace(format)) {
			case "yaml", "yml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(descriptors); err != nil {
					return fmt.Errorf("describe: encode yaml: %w", err)
				}
				return enc.Close()
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(descriptors)
			default:
				reportFormat, err := report.ParseFormat(format)
				if err != nil {
					return fmt.Errorf("describe: %w", err)
				}
				engine, err := report.New(report.WithBaseDir(templates))
				if err != nil {
					return err
				}
				_, err = engine.Render(reportFormat, descriptors, out)
				return err
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml, json, html, text")
	cmd.Flags().StringVar(&templates, "templates", "", "directory of catalog templates overriding the bundled ones")
	return cmd
}
