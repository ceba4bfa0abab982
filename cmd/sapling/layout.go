package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/sapling"
)

type layoutReport struct {
	Columns float64      `yaml:"columns"`
	Depth   int          `yaml:"depth"`
	Slots   []slotReport `yaml:"slots"`
}

type slotReport struct {
	Path        string  `yaml:"path"`
	Item        string  `yaml:"item,omitempty"`
	Placeholder bool    `yaml:"placeholder,omitempty"`
	GridX       float64 `yaml:"grid_x"`
	GridY       float64 `yaml:"grid_y"`
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
}

func newLayoutCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "layout [tree.yaml]",
		Short: "Print where each slot is drawn",
		Long: `Lays the tree out with the current config and prints every visible
slot, placeholders included, with its grid center and pixel bounds.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := loadTree(args)
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig(sapling.DefaultConfig())
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(buildLayoutReport(sapling.Init(tree, cfg))); err != nil {
				return fmt.Errorf("encode layout: %w", err)
			}
			return enc.Close()
		},
	}
}

func buildLayoutReport(s sapling.State[string]) layoutReport {
	label := func(item string, _ sapling.RenderContext) string { return item }
	frame := sapling.Render(s, label, nil)

	l := s.Layout()
	r := layoutReport{Columns: l.Width(), Depth: l.Depth()}
	for _, n := range frame.Nodes {
		pos, _ := l.Lookup(n.Path)
		r.Slots = append(r.Slots, slotReport{
			Path:        n.Path.String(),
			Item:        n.Visual,
			Placeholder: n.Placeholder,
			GridX:       pos.Center.X,
			GridY:       pos.Center.Y,
			X:           n.Bounds.X,
			Y:           n.Bounds.Y,
			Width:       n.Bounds.Width,
			Height:      n.Bounds.Height,
		})
	}
	return r
}
