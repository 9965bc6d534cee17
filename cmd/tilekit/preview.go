package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/tilekit/screen"
	"github.com/lixenwraith/tilekit/widget"
)

func newPreviewCmd(a *app) *cobra.Command {
	var opts splitOpts
	var colorMode string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show a split full screen, re-solving on resize (q or Esc quits)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := opts.resolve(a.cfg)
			if err != nil {
				return err
			}

			mode, err := a.cfg.ColorMode()
			if colorMode != "" {
				mode, err = screen.ParseColorMode(colorMode)
			}
			if err != nil {
				return err
			}

			scr, err := screen.Open(mode, screen.WithLogger(a.logger))
			if err != nil {
				return err
			}
			defer scr.Close()

			var drawErr error
			err = scr.Run(cmd.Context(), func(f *widget.Frame) {
				if err := view.draw(f); err != nil && drawErr == nil {
					drawErr = err
				}
			})
			if errors.Is(err, context.Canceled) {
				err = nil
			}
			return errors.Join(err, drawErr)
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVar(&colorMode, "color", "", "color mode: auto, truecolor, 256 (default from config)")
	return cmd
}
