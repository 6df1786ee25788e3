package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"animvec/interp"
	"animvec/vectorn"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "animvec",
		Short:         "Animate an n-dimensional vector toward a target",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newViper(cmd.Flags())
			if err != nil {
				return err
			}
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			last, err := run(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), last)
			return nil
		},
	}
	bindFlags(cmd.Flags())
	return cmd
}

// run plays the animation described by cfg and returns the last frame's value.
func run(ctx context.Context, cfg Config, logger *slog.Logger) (vectorn.V, error) {
	curve, err := curveByName(cfg.Curve)
	if err != nil {
		return vectorn.V{}, err
	}

	from := vectorn.FromValues(cfg.From)
	to := vectorn.FromValues(cfg.To)
	if from.Len() != to.Len() {
		logger.Warn("dimension mismatch, frames are truncated", "from", from.Len(), "to", to.Len())
	}

	anim := &interp.Animation[vectorn.V, *vectorn.V]{
		From:      from,
		To:        to,
		Duration:  cfg.Duration,
		Curve:     curve,
		Threshold: cfg.Threshold,
	}

	logger.Info("animating", "from", from, "to", to, "duration", cfg.Duration, "fps", cfg.FPS)

	var last vectorn.V
	frames := 0
	for f := range anim.Frames(ctx, cfg.FPS) {
		logger.Debug("frame", "index", f.Index, "elapsed", f.Elapsed, "value", f.Value, "magnitudeSquared", f.Value.MagnitudeSquared())
		last = f.Value
		frames++
	}
	if err := ctx.Err(); err != nil {
		return last, fmt.Errorf("animation interrupted after %d frames: %w", frames, err)
	}

	logger.Info("settled", "frames", frames, "value", last)
	return last, nil
}
