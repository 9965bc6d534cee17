package widgets

import (
	"fmt"
	"math"

	"github.com/lixenwraith/tilekit/buffer"
	"github.com/lixenwraith/tilekit/geom"
	"github.com/lixenwraith/tilekit/style"
)

// Gauge bar symbols
const (
	gaugeFull  = "█"
	gaugeHalf  = "▌"
	gaugeEmpty = "░"
)

// Gauge draws a horizontal progress bar with a centered label
type Gauge struct {
	block      *Block
	ratio      float64
	label      string
	hasLabel   bool
	style      style.Style
	gaugeStyle style.Style
}

// NewGauge returns an empty gauge
func NewGauge() Gauge {
	return Gauge{}
}

// WithRatio sets progress in [0, 1]; out of range values are clamped
func (g Gauge) WithRatio(r float64) Gauge {
	if math.IsNaN(r) || r < 0 {
		r = 0
	}
	g.ratio = min(r, 1)
	return g
}

// WithPercent sets progress in whole percent
func (g Gauge) WithPercent(p uint16) Gauge {
	return g.WithRatio(float64(p) / 100)
}

// WithLabel replaces the default percentage label
func (g Gauge) WithLabel(label string) Gauge {
	g.label = label
	g.hasLabel = true
	return g
}

func (g Gauge) WithBlock(b Block) Gauge {
	g.block = &b
	return g
}

// WithStyle sets the style of the whole gauge area
func (g Gauge) WithStyle(s style.Style) Gauge {
	g.style = s
	return g
}

// WithGaugeStyle sets the style of the bar and label
func (g Gauge) WithGaugeStyle(s style.Style) Gauge {
	g.gaugeStyle = s
	return g
}

// Render draws the gauge into area
func (g Gauge) Render(area geom.Geometry, buf *buffer.Buffer) {
	area = area.Intersection(buf.Area)
	if area.IsEmpty() {
		return
	}
	buf.SetStyle(area, g.style)

	inner := area
	if g.block != nil {
		g.block.Render(area, buf)
		inner = g.block.Inner(area)
	}
	if inner.IsEmpty() {
		return
	}

	filled := float64(inner.Cols) * g.ratio
	whole := int(filled)
	half := filled-float64(whole) >= 0.5

	for y := inner.Top(); y < inner.Bottom(); y++ {
		for i := 0; i < int(inner.Cols); i++ {
			sym := gaugeEmpty
			if i < whole {
				sym = gaugeFull
			} else if i == whole && half {
				sym = gaugeHalf
			}
			buf.Get(inner.X+uint16(i), y).SetSymbol(sym).SetStyle(g.gaugeStyle)
		}
	}

	label := g.label
	if !g.hasLabel {
		label = fmt.Sprintf("%d%%", int(math.Round(g.ratio*100)))
	}
	w := uint16(min(displayWidth(label), int(inner.Cols)))
	x := inner.X + (inner.Cols-w)/2
	y := inner.Y + inner.Rows/2
	buf.SetStringN(x, y, label, int(inner.Cols), g.gaugeStyle)
}
