package main

import (
	"fmt"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"tickdown/internal/config"
	"tickdown/internal/history"
	"tickdown/internal/session"
)

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var (
		target   string
		width    int
		height   int
		frames   int
		color    string
		bg       string
		name     string
		timezone string
		message  string
		outDir   string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a countdown animation to tmp/<name>.gif",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := applyRenderFlags(cmd, cfg, renderFlags{
				width: width, height: height, frames: frames,
				color: color, bg: bg, name: name,
				timezone: timezone, message: message, outDir: outDir,
			}); err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			var store *history.Store
			if cfg.History.Enabled {
				store, err = history.Open(cfg)
				if err != nil {
					logger.Warn("history ledger unavailable", "error", err)
				} else {
					defer store.Close()
				}
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			result, err := session.New(cfg, logger, store).Run(runCtx, target, nil)
			if err != nil {
				return err
			}

			mode := "countdown"
			if result.Passed {
				mode = "passed"
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Output", "Mode", "Frames", "Bytes"},
				[][]string{{
					result.Path,
					mode,
					strconv.Itoa(result.Frames),
					strconv.FormatInt(result.Bytes, 10),
				}},
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "", `Target time, e.g. "2099-01-01 00:00" (required)`)
	cmd.Flags().IntVar(&width, "width", 0, "Canvas width (clamped to 150-1000)")
	cmd.Flags().IntVar(&height, "height", 0, "Canvas height (clamped to 150-500)")
	cmd.Flags().IntVar(&frames, "frames", 0, "Frame count (clamped to 1-90)")
	cmd.Flags().StringVar(&color, "color", "", "Text color as hex, e.g. ffe600")
	cmd.Flags().StringVar(&bg, "bg", "", "Background color as hex, e.g. 000000")
	cmd.Flags().StringVar(&name, "name", "", "Output filename stem")
	cmd.Flags().StringVar(&timezone, "timezone", "", "Time zone: uk, nl, or ru")
	cmd.Flags().StringVar(&message, "message", "", "Text rendered once the date has passed")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "Working directory for tmp/<name>.gif")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

type renderFlags struct {
	width, height, frames                      int
	color, bg, name, timezone, message, outDir string
}

// applyRenderFlags layers explicitly-set flags over the loaded config, then
// re-applies the render clamps so flag values get the same silent bounds as
// file values.
func applyRenderFlags(cmd *cobra.Command, cfg *config.Config, flags renderFlags) error {
	set := cmd.Flags().Changed
	if set("width") {
		cfg.Render.Width = flags.width
	}
	if set("height") {
		cfg.Render.Height = flags.height
	}
	if set("frames") {
		cfg.Render.Frames = flags.frames
	}
	if set("color") {
		cfg.Render.Color = flags.color
	}
	if set("bg") {
		cfg.Render.Background = flags.bg
	}
	if set("name") {
		cfg.Render.Name = flags.name
	}
	if set("timezone") {
		cfg.Render.Timezone = flags.timezone
	}
	if set("message") {
		cfg.Render.PassedMessage = flags.message
	}
	if set("out-dir") {
		expanded, err := config.ExpandPath(flags.outDir)
		if err != nil {
			return err
		}
		cfg.Paths.OutDir = expanded
	}
	return cfg.NormalizeRender()
}
