package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/inamate/perspective/internal/document"
	"github.com/inamate/perspective/internal/engine"
	"github.com/inamate/perspective/internal/raster"
)

var (
	good   = color.New(color.FgGreen)
	bad    = color.New(color.FgRed)
	subtle = color.New(color.FgHiBlack)
	brand  = color.New(color.FgHiCyan, color.Bold)
)

func newRootCmd() *cobra.Command {
	var diagram string

	root := &cobra.Command{
		Use:           "perspective",
		Short:         "Render and inspect perspective construction diagrams",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&diagram, "diagram", "d", "", "diagram file (.json, .yaml, .toml); built-in perspective diagram when empty")

	root.AddCommand(
		renderCmd(&diagram),
		coordsCmd(&diagram),
		validateCmd(),
		convertCmd(&diagram),
	)

	return withErrorOutput(root)
}

// withErrorOutput prints subcommand errors in red, since cobra's own error
// printing is silenced.
func withErrorOutput(root *cobra.Command) *cobra.Command {
	for _, c := range root.Commands() {
		run := c.RunE
		c.RunE = func(cmd *cobra.Command, args []string) error {
			err := run(cmd, args)
			if err != nil {
				bad.Fprintf(cmd.ErrOrStderr(), "perspective: %v\n", err)
			}
			return err
		}
	}
	return root
}

func loadDocument(path string) (*document.Document, error) {
	if path == "" {
		return document.NewPerspectiveDocument(), nil
	}
	return document.Load(path)
}

func buildEngine(path string, ticks int) (*engine.Engine, error) {
	doc, err := loadDocument(path)
	if err != nil {
		return nil, err
	}
	scene, err := document.Build(doc)
	if err != nil {
		return nil, err
	}
	e := engine.NewEngine(scene)
	for range ticks {
		e.Advance()
	}
	return e, nil
}

func renderCmd(diagram *string) *cobra.Command {
	var (
		output        string
		ticks         int
		width, height int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the diagram to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ticks < 1 {
				return fmt.Errorf("--ticks must be at least 1")
			}
			e, err := buildEngine(*diagram, ticks)
			if err != nil {
				return err
			}
			if width > 0 {
				e.Scene().Width = width
			}
			if height > 0 {
				e.Scene().Height = height
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			if err := raster.RenderPNG(e, f); err != nil {
				f.Close()
				return fmt.Errorf("render: %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close output: %w", err)
			}

			good.Fprintf(cmd.OutOrStdout(), "wrote %s", output)
			subtle.Fprintf(cmd.OutOrStdout(), " (%dx%d, tick %d)\n", e.Scene().Width, e.Scene().Height, ticks)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "perspective.png", "output PNG path")
	cmd.Flags().IntVar(&ticks, "ticks", 1, "number of ticks to evaluate before drawing")
	cmd.Flags().IntVar(&width, "width", 0, "override the scene width")
	cmd.Flags().IntVar(&height, "height", 0, "override the scene height")
	return cmd
}

func coordsCmd(diagram *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coords",
		Short: "Print every point's coordinates after one frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := buildEngine(*diagram, 1)
			if err != nil {
				return err
			}
			e.Frame()

			points := e.Coordinates()
			width := len("POINT")
			for _, p := range points {
				width = max(width, len(p.Name))
			}

			out := cmd.OutOrStdout()
			brand.Fprintf(out, "%s\n", e.Scene().Name)
			subtle.Fprintf(out, "%-*s  %8s  %8s\n", width, "POINT", "X", "Y")
			for _, p := range points {
				if !p.Drawn {
					fmt.Fprintf(out, "%-*s  %8s  %8s\n", width, p.Name, "-", "-")
					continue
				}
				fmt.Fprintf(out, "%-*s  %8g  %8g\n", width, p.Name, p.X, p.Y)
			}
			return nil
		},
	}
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check that diagram files decode and build",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				doc, err := document.Load(path)
				if err == nil {
					err = document.Validate(doc)
				}
				if err != nil {
					failed++
					bad.Fprintf(cmd.OutOrStdout(), "✗ %s: %v\n", path, err)
					continue
				}
				good.Fprintf(cmd.OutOrStdout(), "✓ %s\n", path)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d diagrams invalid", failed, len(args))
			}
			return nil
		},
	}
}

func convertCmd(diagram *string) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <output>",
		Short: "Write the diagram in the format chosen by the output extension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(*diagram)
			if err != nil {
				return err
			}
			format, err := document.FormatFromPath(args[0])
			if err != nil {
				return err
			}
			data, err := document.Encode(doc, format)
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			good.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}
}
