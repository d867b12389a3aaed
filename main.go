package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"

	"github.com/matt-g-everett/mathanim/animation"
	"github.com/matt-g-everett/mathanim/mobject"
	"github.com/matt-g-everett/mathanim/ratefunc"
	"github.com/matt-g-everett/mathanim/script"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	detailStyle  = lipgloss.NewStyle().Faint(true)
)

func newRootCommand() *cobra.Command {
	var configPath string
	var verbose bool

	root := &cobra.Command{
		Use:           "mathanim",
		Short:         "Render declarative math animations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "YAML config file.")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level.")

	var fps float64
	var output string
	var noPNG bool
	renderCmd := &cobra.Command{
		Use:   "render SCRIPT",
		Short: "Play a scene script through the configured outputs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			if err := a.readConfig(configPath, cmd.Flags().Changed("config")); err != nil {
				return err
			}
			if cmd.Flags().Changed("fps") {
				a.config.Scene.FPS = fps
			}
			if output != "" {
				a.config.Render.Dir = output
			}
			if noPNG {
				a.config.Render.Dir = ""
			}
			if err := a.setupLogging(verbose); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return a.run(ctx, args[0])
		},
	}

	renderCmd.Flags().Float64Var(&fps, "fps", 0, "Frames per second, overrides the config.")
	renderCmd.Flags().StringVarP(&output, "output", "o", "", "PNG output directory, overrides the config.")
	renderCmd.Flags().BoolVar(&noPNG, "no-png", false, "Do not write PNG frames.")

	inspectCmd := &cobra.Command{
		Use:   "inspect SCRIPT",
		Short: "Print the mobjects and timeline of a scene script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			s, err := script.Load(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			out, err := inspect(s)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	rateCmd := &cobra.Command{
		Use:   "ratefuncs",
		Short: "List the rate functions scripts may name",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(ratefunc.Names(), "\n"))
		},
	}

	root.AddCommand(renderCmd, inspectCmd, rateCmd)
	return root
}

// inspect draws the mobject trees and the timeline of s.
func inspect(s *script.Script) (string, error) {
	mobs := tree.New().Root(headingStyle.Render("mobjects"))
	for _, m := range s.Mobjects() {
		mobs.Child(mobjectTree(m))
	}

	anims, err := s.Animations(nil)
	if err != nil {
		return "", err
	}
	timeline := tree.New().Root(headingStyle.Render("timeline"))
	for _, a := range anims {
		timeline.Child(animationTree(a))
	}
	return mobs.String() + "\n" + timeline.String(), nil
}

func mobjectTree(m *mobject.Mobject) any {
	label := m.Name() + " " + detailStyle.Render(fmt.Sprintf("%s, %d points", m.Kind(), m.PointCount()))
	if len(m.Submobjects()) == 0 {
		return label
	}
	t := tree.New().Root(label)
	for _, c := range m.Submobjects() {
		t.Child(mobjectTree(c))
	}
	return t
}

func animationTree(a animation.Animation) any {
	label := a.Name() + " " + detailStyle.Render(a.RunTime().String())
	c, ok := a.(animation.Composite)
	if !ok {
		return label
	}
	t := tree.New().Root(label)
	for _, child := range c.Children() {
		t.Child(animationTree(child))
	}
	return t
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
