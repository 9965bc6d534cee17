package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lixenwraith/tilekit/buffer"
	"github.com/lixenwraith/tilekit/config"
	"github.com/lixenwraith/tilekit/geom"
	"github.com/lixenwraith/tilekit/layout"
	"github.com/lixenwraith/tilekit/text"
	"github.com/lixenwraith/tilekit/widget"
	"github.com/lixenwraith/tilekit/widgets"
)

const (
	defaultRows = 24
	defaultCols = 80
)

// splitOpts holds the flags shared by render and preview
type splitOpts struct {
	direction   string
	constraints string
	margin      string
	border      string // empty uses the config value
}

func (o *splitOpts) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.direction, "direction", "d", "vertical", "split direction: vertical or horizontal")
	f.StringVarP(&o.constraints, "constraints", "c", "50%,50%", "comma separated constraints: 50%, 1:3, 10, max:5, min:2")
	f.StringVarP(&o.margin, "margin", "m", "0", "margin as N or HxV")
	f.StringVar(&o.border, "border", "", "border type: plain, rounded, double, thick, blank")
}

// splitView is a parsed splitOpts ready to draw
type splitView struct {
	layout layout.Layout
	border widgets.BorderType
	theme  config.Theme
}

func (o *splitOpts) resolve(cfg *config.Config) (*splitView, error) {
	dir, err := layout.ParseDirection(o.direction)
	if err != nil {
		return nil, err
	}
	cs, err := layout.ParseConstraints(o.constraints)
	if err != nil {
		return nil, err
	}
	h, v, err := parseMargin(o.margin)
	if err != nil {
		return nil, err
	}

	border := cfg.BorderType()
	if o.border != "" {
		bt, ok := widgets.ParseBorderType(o.border)
		if !ok {
			return nil, fmt.Errorf("unknown border type %q", o.border)
		}
		border = bt
	}

	theme, err := cfg.Theme.Resolve()
	if err != nil {
		return nil, err
	}

	l := layout.New(dir, cs...).WithHorizontalMargin(h).WithVerticalMargin(v)
	return &splitView{layout: l, border: border, theme: theme}, nil
}

// draw splits the frame and labels each segment with its constraint and size
func (v *splitView) draw(f *widget.Frame) error {
	rects, err := layout.DefaultEngine().TrySplit(f.Size(), v.layout)
	if err != nil {
		return err
	}
	cs := v.layout.Constraints()
	for i, r := range rects {
		block := widgets.Bordered().
			WithBorderType(v.border).
			WithBorderStyle(v.theme.Border).
			WithTitle(cs[i].String()).
			WithTitleStyle(v.theme.Title)
		body := widgets.ParagraphText(fmt.Sprintf("%dx%d", r.Cols, r.Rows)).
			WithBlock(block).
			WithStyle(v.theme.Text).
			WithAlignment(text.AlignCenter)
		f.RenderWidget(body, r)
	}
	return nil
}

func newRenderCmd(a *app) *cobra.Command {
	var opts splitOpts
	var rows, cols int

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Split an area and print the rendered blocks as text",
		Example: `  tilekit render -d horizontal -c "30%,min:10,1:3" --cols 60 --rows 5
  tilekit render -c "3,50%,max:4" --border rounded`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := opts.resolve(a.cfg)
			if err != nil {
				return err
			}

			area := viewportSize(rows, cols)
			a.logger.Debug("render", "layout", view.layout, "rows", area.Rows, "cols", area.Cols)

			var drawErr error
			buf := widget.Draw(area, func(f *widget.Frame) {
				drawErr = view.draw(f)
			})
			if drawErr != nil {
				return drawErr
			}
			return writeBuffer(cmd.OutOrStdout(), buf)
		},
	}
	opts.register(cmd)
	cmd.Flags().IntVar(&rows, "rows", 0, "viewport rows (default: terminal height or 24)")
	cmd.Flags().IntVar(&cols, "cols", 0, "viewport columns (default: terminal width or 80)")
	return cmd
}

// viewportSize fills unset dimensions from the terminal, then from defaults.
// The result is shrunk to fit the buffer cell limit.
func viewportSize(rows, cols int) geom.Geometry {
	if rows <= 0 || cols <= 0 {
		tw, th := defaultCols, defaultRows
		if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
			if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
				tw, th = w, h
			}
		}
		if rows <= 0 {
			rows = th
		}
		if cols <= 0 {
			cols = tw
		}
	}
	return geom.Fit(rows, cols)
}

// parseMargin accepts "N" for both axes or "HxV"
func parseMargin(s string) (uint16, uint16, error) {
	hs, vs, both := strings.Cut(strings.TrimSpace(s), "x")
	h, err := strconv.ParseUint(hs, 10, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid margin %q: %w", s, err)
	}
	if !both {
		return uint16(h), uint16(h), nil
	}
	v, err := strconv.ParseUint(vs, 10, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid margin %q: %w", s, err)
	}
	return uint16(h), uint16(v), nil
}

// writeBuffer prints each buffer row as plain text, skipping cells covered by wide symbols
func writeBuffer(w io.Writer, buf *buffer.Buffer) error {
	var sb strings.Builder
	for y := buf.Area.Top(); y < buf.Area.Bottom(); y++ {
		skip := 0
		for x := buf.Area.Left(); x < buf.Area.Right(); x++ {
			if skip > 0 {
				skip--
				continue
			}
			sym := buf.Get(x, y).Symbol
			sb.WriteString(sym)
			skip = max(text.Raw(sym).Width()-1, 0)
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
