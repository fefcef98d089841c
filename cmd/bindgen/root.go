package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-bindgen/pkg/config"
	"github.com/goliatone/go-bindgen/pkg/descriptor"
	"github.com/goliatone/go-bindgen/pkg/provider"
)

type rootOptions struct {
	configDir string
	verbose   bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "bindgen",
		Short: "Inspect the descriptors a template compilation pass publishes",
		Long: `bindgen runs the descriptor providers of one compilation pass (component
discovery followed by the generic bind macro) and prints what they publish,
or checks which descriptors apply to a given markup element.`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.PersistentFlags().StringVarP(&opts.configDir, "config", "c", "", "directory holding JSON/YAML configuration (embedded defaults if empty)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "trace provider execution to stderr")

	root.AddCommand(newDescribeCommand(opts))
	root.AddCommand(newMatchCommand(opts, newSurveyDriver()))
	return root
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	dir := strings.TrimSpace(o.configDir)
	if dir == "" {
		return config.LoadFS(config.EmbeddedFS())
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("config: %q is not a directory", dir)
	}
	return config.LoadFS(os.DirFS(dir))
}

// runPass loads configuration and runs one compilation pass.
func (o *rootOptions) runPass(ctx context.Context, stderr io.Writer) (*config.Config, *descriptor.Results, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	var pipelineOpts []provider.Option
	if o.verbose {
		pipelineOpts = append(pipelineOpts, provider.WithLogger(log.New(stderr, "bindgen: ", 0)))
	}
	pipeline, err := provider.DefaultPipeline(cfg, pipelineOpts...)
	if err != nil {
		return nil, nil, err
	}
	results, err := pipeline.Run(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, results, nil
}
