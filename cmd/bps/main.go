package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/bps/internal/config"
	"github.com/san-kum/bps/internal/constants"
	"github.com/san-kum/bps/internal/logging"
	"github.com/san-kum/bps/internal/relativity"
	"github.com/san-kum/bps/internal/vecmath"
)

type app struct {
	logLevel  string
	logFormat string
	logger    *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:          "bps",
		Short:        "charged and gravitating particle simulator",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = logging.NewLoggerFormat(a.logLevel, a.logFormat, cmd.ErrOrStderr())
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (error, warn, warning, info, debug, trace)")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", logging.FormatText, "log format (text, json)")

	rootCmd.AddCommand(
		newRunCmd(a),
		newSweepCmd(a),
		newMonteCarloCmd(a),
		newPresetsCmd(),
		newRotateCmd(),
		newComposeCmd(),
	)
	return rootCmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [name]",
		Short: "list presets, or print one as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, name := range config.ListPresets() {
					p := config.GetPreset(name)
					fmt.Fprintf(out, "  %-14s %d particles, %s units, %gs\n", name, len(p.Particles), p.Units, p.Duration)
				}
				return nil
			}

			cfg := config.GetPreset(args[0])
			if cfg == nil {
				return fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}
}

func newRotateCmd() *cobra.Command {
	var (
		axis     []float64
		angle    float64
		showQuat bool
	)
	cmd := &cobra.Command{
		Use:   "rotate x y z",
		Short: "rotate a vector about an axis",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseVector(args)
			if err != nil {
				return err
			}
			if len(axis) != 3 {
				return fmt.Errorf("--axis needs 3 components, got %d", len(axis))
			}
			ax := vecmath.NewThreeVector(axis[0], axis[1], axis[2])

			out := cmd.OutOrStdout()
			if showQuat {
				fmt.Fprintln(out, vecmath.RotationQuaternion(ax, angle))
			}
			v.Rotate(ax, angle)
			fmt.Fprintln(out, v)
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&axis, "axis", []float64{0, 0, 1}, "rotation axis")
	cmd.Flags().Float64Var(&angle, "angle", 0, "rotation angle in radians")
	cmd.Flags().BoolVar(&showQuat, "quaternion", false, "also print the rotation quaternion")
	return cmd
}

func newComposeCmd() *cobra.Command {
	var c float64
	cmd := &cobra.Command{
		Use:   "compose v1x v1y v1z v2x v2y v2z",
		Short: "add two velocities relativistically",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			v1, err := parseVector(args[:3])
			if err != nil {
				return err
			}
			v2, err := parseVector(args[3:])
			if err != nil {
				return err
			}
			if c <= 0 {
				return fmt.Errorf("--c must be positive, got %g", c)
			}

			sum := relativity.AddVelocitiesC(v1, v2, c)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, sum)
			fmt.Fprintf(out, "beta: %g\n", relativity.Beta(sum, c))
			return nil
		},
	}
	cmd.Flags().Float64Var(&c, "c", constants.SpeedOfLight, "speed of light")
	return cmd
}

func parseVector(args []string) (vecmath.ThreeVector, error) {
	var v vecmath.ThreeVector
	for i, s := range args {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return v, fmt.Errorf("component %d: %w", i, err)
		}
		v[i] = f
	}
	return v, nil
}
