// Command supball solves ray-sampled enclosing-ball problems from the
// command line.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/dmcooke/supball"
)

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

type solverFlags struct {
	coeffs     string
	freq       float64
	target     string
	bound      float64
	rays       int
	takeMin    bool
	imagThresh float64
	workers    int
}

func (f *solverFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.coeffs, "coeffs", "", "phase coefficients, ascending powers, comma separated (e.g. \"1,0.5+0.2i\")")
	cmd.Flags().Float64Var(&f.freq, "freq", 1.0, "oscillation frequency")
	cmd.Flags().StringVar(&f.target, "target", "0", "target point in the complex plane")
	cmd.Flags().Float64Var(&f.bound, "bound", 1e6, "oscillation bound (radius ceiling)")
	cmd.Flags().BoolVar(&f.takeMin, "min", false, "report the infimum aggregate instead of the supremum")
	cmd.Flags().Float64Var(&f.imagThresh, "imag-thresh", 1.0, "imaginary-part admissibility tolerance")
	cmd.MarkFlagRequired("coeffs")
}

func (f *solverFlags) params() (supball.Params, error) {
	coeffs, err := parseCoeffs(f.coeffs)
	if err != nil {
		return supball.Params{}, err
	}
	target, err := strconv.ParseComplex(strings.TrimSpace(f.target), 128)
	if err != nil {
		return supball.Params{}, fmt.Errorf("bad target %q: %w", f.target, err)
	}
	return supball.Params{
		Coeffs:        coeffs,
		Freq:          f.freq,
		Target:        target,
		OscBound:      f.bound,
		Rays:          f.rays,
		TakeMax:       !f.takeMin,
		ImagThreshold: f.imagThresh,
	}, nil
}

func parseCoeffs(s string) ([]complex128, error) {
	parts := strings.Split(s, ",")
	coeffs := make([]complex128, 0, len(parts))
	for _, part := range parts {
		c, err := strconv.ParseComplex(strings.TrimSpace(part), 128)
		if err != nil {
			return nil, fmt.Errorf("bad coefficient %q: %w", part, err)
		}
		coeffs = append(coeffs, c)
	}
	return coeffs, nil
}

func newSolveCmd() *cobra.Command {
	flags := &solverFlags{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute the enclosing-ball radius for one parameter set",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.params()
			if err != nil {
				return err
			}

			var r float64
			if flags.workers > 1 {
				r, err = supball.SolveParallel(p, flags.workers)
			} else {
				r, err = supball.Solve(p)
			}
			if err != nil {
				return err
			}

			slog.Info("solved", "rays", p.Rays, "freq", p.Freq, "take_max", p.TakeMax)
			fmt.Fprintf(cmd.OutOrStdout(), "%.12f\n", r)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&flags.rays, "rays", 64, "number of sampling directions")
	cmd.Flags().IntVar(&flags.workers, "workers", 1, "worker goroutines for the ray sweep")
	return cmd
}

func newSweepCmd() *cobra.Command {
	flags := &solverFlags{rays: 1} // overridden per sweep level
	cfg := supball.DefaultConvergenceConfig()

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sweep the ray count and report convergence and magnitude statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.params()
			if err != nil {
				return err
			}

			analysis, err := supball.AnalyzeConvergence(p, cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, point := range analysis.Points {
				if point.Skipped {
					fmt.Fprintf(out, "R=%-6d skipped (all rays inadmissible)\n", point.Rays)
					continue
				}
				fmt.Fprintf(out, "R=%-6d r=%.12f\n", point.Rays, point.Radius)
			}

			if analysis.Converged {
				slog.Info("converged",
					"rays", analysis.RaysAtConvergence,
					"radius", analysis.StableRadius,
					"decay_rate", analysis.Rate)
			} else {
				slog.Warn("not converged",
					"max_rays", cfg.MaxRays,
					"last_radius", analysis.StableRadius)
			}

			stats := p
			stats.Rays = analysis.RaysAtConvergence
			snapshot, err := supball.SweepStats(stats)
			if err != nil {
				return err
			}
			slog.Info("magnitude distribution",
				"valid", snapshot.Valid,
				"discarded", snapshot.Discarded,
				"min", snapshot.Min,
				"p50", snapshot.P50,
				"p95", snapshot.P95,
				"max", snapshot.Max,
				"mean", snapshot.Mean)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&cfg.MinRays, "min-rays", cfg.MinRays, "starting ray count")
	cmd.Flags().IntVar(&cfg.MaxRays, "max-rays", cfg.MaxRays, "ray count ceiling")
	cmd.Flags().Float64Var(&cfg.Tolerance, "tol", cfg.Tolerance, "convergence tolerance on the radius")
	return cmd
}

func main() {
	root := &cobra.Command{
		Use:           "supball",
		Short:         "Ray-sampled enclosing balls for oscillatory phase functions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCmd(), newSweepCmd())

	if err := root.Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}
