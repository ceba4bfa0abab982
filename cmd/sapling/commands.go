package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/sapling"
	"github.com/phanxgames/sapling/canvas"
	"github.com/phanxgames/sapling/internal/logging"
	"github.com/phanxgames/sapling/internal/treefile"
	"github.com/phanxgames/sapling/term"
)

// rootOptions are the flags shared by every command.
type rootOptions struct {
	configPath string
	outPath    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "sapling",
		Short: "Interactive editor for ordered trees",
		Long: `Sapling lays out a rooted, ordered tree and lets you select, rename,
add, delete and drag its nodes. Trees are read from and written to YAML
snapshots.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML layout config")
	cmd.PersistentFlags().StringVarP(&opts.outPath, "out", "o", "", "write the edited tree here on exit")

	cmd.AddCommand(newViewCmd(opts))
	cmd.AddCommand(newTermCmd(opts))
	cmd.AddCommand(newLayoutCmd(opts))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sapling version %s\n", version)
		},
	})
	return cmd
}

// demoTree is edited when no snapshot is given.
func demoTree() sapling.Tree[string] {
	return sapling.NewNode("root",
		sapling.NewNode("left", sapling.NewNode("leaf")),
		sapling.NewNode("right"),
	)
}

func loadTree(args []string) (sapling.Tree[string], error) {
	if len(args) == 0 {
		return demoTree(), nil
	}
	return treefile.Load(args[0])
}

// loadConfig reads --config over base, the host's defaults.
func (o *rootOptions) loadConfig(base sapling.Config) (sapling.Config, error) {
	if o.configPath == "" {
		return base, nil
	}
	data, err := os.ReadFile(o.configPath)
	if err != nil {
		return sapling.Config{}, fmt.Errorf("read config: %w", err)
	}
	return sapling.LoadConfigOver(base, data)
}

func (o *rootOptions) save(t sapling.Tree[string]) error {
	if o.outPath == "" {
		return nil
	}
	if err := treefile.Save(o.outPath, t); err != nil {
		return err
	}
	log.Info("tree saved", "path", o.outPath, "slots", sapling.Count(t))
	return nil
}

func newViewCmd(opts *rootOptions) *cobra.Command {
	var (
		scriptPath    string
		screenshotDir string
		debug         bool
	)
	cmd := &cobra.Command{
		Use:   "view [tree.yaml]",
		Short: "Edit a tree in a window",
		Long: `Opens the tree in an ebiten window.

Click a node to select it and type to rename it, click a "+" slot to add a
child, press Delete to clear the selection and drag nodes onto each other
to swap them. Right-drag pans and the wheel zooms.

A JSON test script given with --script is replayed and the window closes
when it finishes.`,
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

			copts := canvas.DefaultOptions()
			copts.Debug = debug
			copts.ShowFPS = debug
			if screenshotDir != "" {
				copts.ScreenshotDir = screenshotDir
			}
			var runner *canvas.TestRunner
			if scriptPath != "" {
				data, err := os.ReadFile(scriptPath)
				if err != nil {
					return fmt.Errorf("read script: %w", err)
				}
				if runner, err = canvas.LoadTestScript(data); err != nil {
					return err
				}
				copts.ExitAfterScript = true
			}

			c, err := canvas.New(tree, cfg, sapling.StringCodec(), copts)
			if err != nil {
				return err
			}
			if runner != nil {
				c.SetTestRunner(runner)
			}
			if err := canvas.Run(c, canvas.RunConfig{Title: "sapling", Resizable: true}); err != nil {
				return err
			}
			return opts.save(c.Tree())
		},
	}
	cmd.Flags().StringVar(&scriptPath, "script", "", "JSON test script to replay")
	cmd.Flags().StringVar(&screenshotDir, "screenshots", "", "directory for script screenshots")
	cmd.Flags().BoolVar(&debug, "debug", false, "show FPS and log frame stats")
	return cmd
}

func newTermCmd(opts *rootOptions) *cobra.Command {
	var logPath string
	cmd := &cobra.Command{
		Use:   "term [tree.yaml]",
		Short: "Edit a tree in the terminal",
		Long: `Opens the tree in a full-screen terminal UI with mouse support.

Logs are discarded while the UI owns the screen unless --log names a file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := loadTree(args)
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig(term.DefaultConfig())
			if err != nil {
				return err
			}
			m, err := term.New(tree, cfg, sapling.StringCodec())
			if err != nil {
				return err
			}

			restore, err := redirectLogs(logPath)
			if err != nil {
				return err
			}
			edited, runErr := term.Run(m)
			restore()
			if runErr != nil {
				return runErr
			}
			return opts.save(edited)
		},
	}
	cmd.Flags().StringVar(&logPath, "log", "", "append logs to this file")
	return cmd
}

// redirectLogs points logging at path, or nowhere, and returns the undo.
func redirectLogs(path string) (func(), error) {
	if path == "" {
		prev := logging.SetOutput(nil)
		return func() { logging.SetOutput(prev) }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	prev := logging.SetOutput(f)
	return func() {
		logging.SetOutput(prev)
		f.Close()
	}, nil
}
