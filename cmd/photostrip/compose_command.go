package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"photostrip/internal/captions"
	"photostrip/internal/config"
	"photostrip/internal/geometry"
	"photostrip/internal/workflow"
)

type composeOptions struct {
	captions  []string
	output    string
	outputDir string
	font      string
	quality   int
}

func newComposeCommand(ctx *commandContext) *cobra.Command {
	var opts composeOptions

	cmd := &cobra.Command{
		Use:   "compose <first> <second> <third> <fourth>",
		Short: "Caption four photos and join them side by side",
		Long: "Caption four photos and join them side by side.\n\n" +
			"Captions and the output name are prompted for unless given with\n" +
			"--caption (four times) and --output.",
		Args: cobra.ExactArgs(geometry.PhotoCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			cfg, err := applyComposeOverrides(base, cmd, opts)
			if err != nil {
				return err
			}

			req := workflow.Request{
				Paths:      args,
				OutputName: opts.output,
				RunID:      uuid.NewString(),
			}
			if cmd.Flags().Changed("caption") {
				if len(opts.captions) != geometry.PhotoCount {
					return fmt.Errorf("--caption must be given %d times, got %d", geometry.PhotoCount, len(opts.captions))
				}
				req.Captions = opts.captions
			}

			logger, err := ctx.logger(cmd, cfg, req.RunID)
			if err != nil {
				return err
			}

			collector := captions.NewCollector(cmd.InOrStdin(), cmd.OutOrStdout(), logger)
			collector.Echo = !isTerminal(cmd.InOrStdin())

			result, err := workflow.NewRunner(cfg, collector, logger).Run(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", result.OutputPath)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&opts.captions, "caption", "t", nil, "Caption for the next photo, in order (repeat four times)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file name without extension")
	cmd.Flags().StringVar(&opts.outputDir, "output-dir", "", "Directory for the composite (overrides output.dir)")
	cmd.Flags().StringVar(&opts.font, "font", "", "Caption font file (overrides caption.font_path)")
	cmd.Flags().IntVar(&opts.quality, "quality", 0, "JPEG quality 1-100 (overrides output.jpeg_quality)")
	return cmd
}

// applyComposeOverrides returns a copy of base with the command's flags
// applied and re-validated.
func applyComposeOverrides(base *config.Config, cmd *cobra.Command, opts composeOptions) (*config.Config, error) {
	cfg := *base
	flags := cmd.Flags()
	if flags.Changed("output-dir") {
		dir, err := config.ExpandPath(opts.outputDir)
		if err != nil {
			return nil, fmt.Errorf("resolve --output-dir: %w", err)
		}
		cfg.Output.Dir = dir
	}
	if flags.Changed("font") {
		font, err := config.ExpandPath(opts.font)
		if err != nil {
			return nil, fmt.Errorf("resolve --font: %w", err)
		}
		cfg.Caption.FontPath = font
	}
	if flags.Changed("quality") {
		cfg.Output.JPEGQuality = opts.quality
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
