package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-bindgen/pkg/descriptor"
)

type matchOptions struct {
	tag         string
	attrs       []string
	interactive bool
}

func newMatchCommand(root *rootOptions, driver PromptDriver) *cobra.Command {
	opts := &matchOptions{}
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Show which descriptors apply to a markup element",
		Example: `  bindgen match --tag input --attr bind-value=@x --attr bind-value-changed=@setX
  bindgen match --interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if opts.interactive {
				if err := promptElement(ctx, driver, opts); err != nil {
					return err
				}
			}
			el, err := buildElement(opts.tag, opts.attrs)
			if err != nil {
				return err
			}

			cfg, results, err := root.runPass(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			var matchOpts []descriptor.MatchOption
			if cfg.CaseSensitive {
				matchOpts = append(matchOpts, descriptor.WithCaseSensitive())
			}
			return printMatches(cmd.OutOrStdout(), el, results.Matching(el, matchOpts...), matchOpts)
		},
	}
	cmd.Flags().StringVarP(&opts.tag, "tag", "t", "", "element tag name")
	cmd.Flags().StringArrayVarP(&opts.attrs, "attr", "a", nil, "attribute as name=value (repeatable)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "prompt for the element")
	return cmd
}

func buildElement(tag string, attrs []string) (descriptor.Element, error) {
	el := descriptor.Element{TagName: strings.TrimSpace(tag)}
	if el.TagName == "" {
		return descriptor.Element{}, fmt.Errorf("match: tag name is required")
	}
	for _, raw := range attrs {
		attr, err := parseAttribute(raw)
		if err != nil {
			return descriptor.Element{}, err
		}
		el.Attributes = append(el.Attributes, attr)
	}
	return el, nil
}

// parseAttribute splits name=value; a bare name has an empty value.
func parseAttribute(raw string) (descriptor.Attribute, error) {
	name, value, _ := strings.Cut(strings.TrimSpace(raw), "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return descriptor.Attribute{}, fmt.Errorf("match: attribute %q has no name", raw)
	}
	return descriptor.Attribute{Name: name, Value: strings.Trim(strings.TrimSpace(value), `"'`)}, nil
}

func printMatches(out io.Writer, el descriptor.Element, matches []descriptor.Descriptor, opts []descriptor.MatchOption) error {
	if _, err := fmt.Fprintln(out, headingStyle.Render(fmt.Sprintf("<%s> matches %d descriptor(s)", el.TagName, len(matches)))); err != nil {
		return err
	}
	for idx, d := range matches {
		if _, err := fmt.Fprintf(out, "%d. %s %s\n", idx+1, nameStyle.Render(d.Name), kindStyle(d.Kind).Render("["+d.Kind.String()+"]")); err != nil {
			return err
		}
		captured, err := descriptor.CaptureAll(&d, el, opts...)
		if err != nil {
			return err
		}
		names := make([]string, 0, len(captured))
		for name := range captured {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			entries := captured[name]
			keys := make([]string, 0, len(entries))
			for key := range entries {
				keys = append(keys, key)
			}
			slices.Sort(keys)
			for _, key := range keys {
				if _, err := fmt.Fprintf(out, "   %s[%q] = %s\n", name, key, entries[key]); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
